/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"net/http"

	backupService "github.com/wso2/blo-register-service/internal/backup/service"
	"github.com/wso2/blo-register-service/internal/exporter"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type ExportHandler struct {
	service exporter.ExportServiceInterface
	backup  backupService.BackupServiceInterface
}

func NewExportHandler(exportService exporter.ExportServiceInterface,
	backup backupService.BackupServiceInterface) *ExportHandler {

	return &ExportHandler{service: exportService, backup: backup}
}

func (eh *ExportHandler) ExportCensus(w http.ResponseWriter, r *http.Request) {

	eh.respond(w, r, constants.ContentTypeXLSX, "census_data_export.xlsx", eh.service.CensusWorkbook)
}

func (eh *ExportHandler) ExportVoters(w http.ResponseWriter, r *http.Request) {

	eh.respond(w, r, constants.ContentTypeXLSX, "voter_list_export.xlsx", eh.service.VoterWorkbook)
}

func (eh *ExportHandler) ExportRegister(w http.ResponseWriter, r *http.Request) {

	eh.respond(w, r, constants.ContentTypePDF, "BLO_Register_Report.pdf", eh.service.RegisterPDF)
}

func (eh *ExportHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {

	eh.respond(w, r, constants.ContentTypeJSON, "blo_pro_backup.json", eh.backup.Export)
}

func (eh *ExportHandler) respond(w http.ResponseWriter, r *http.Request, contentType, fileName string,
	produce func() ([]byte, error)) {

	payload, err := produce()
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondFile(w, contentType, fileName, payload)
}
