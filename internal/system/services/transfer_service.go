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

package services

import (
	"fmt"
	"net/http"

	backupHandler "github.com/wso2/blo-register-service/internal/backup/handler"
	backupService "github.com/wso2/blo-register-service/internal/backup/service"
	"github.com/wso2/blo-register-service/internal/exporter"
	exportHandler "github.com/wso2/blo-register-service/internal/exporter/handler"
	"github.com/wso2/blo-register-service/internal/importer"
	importHandler "github.com/wso2/blo-register-service/internal/importer/handler"
	"github.com/wso2/blo-register-service/internal/system/constants"
)

// TransferService routes spreadsheet imports, file exports and backup restore.
type TransferService struct {
	importHandler *importHandler.ImportHandler
	exportHandler *exportHandler.ExportHandler
	backupHandler *backupHandler.BackupHandler
}

func NewTransferService(mux *http.ServeMux, apiBasePath string, importService importer.ImportServiceInterface,
	exportService exporter.ExportServiceInterface, backup backupService.BackupServiceInterface) *TransferService {

	instance := &TransferService{
		importHandler: importHandler.NewImportHandler(importService),
		exportHandler: exportHandler.NewExportHandler(exportService, backup),
		backupHandler: backupHandler.NewBackupHandler(backup),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *TransferService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	imports := apiBasePath + constants.ImportsApiPath
	mux.HandleFunc(fmt.Sprintf("POST %s/census", imports), s.importHandler.ImportCensus)
	mux.HandleFunc(fmt.Sprintf("POST %s/voters", imports), s.importHandler.ImportVoters)

	exports := apiBasePath + constants.ExportsApiPath
	mux.HandleFunc(fmt.Sprintf("GET %s/census.xlsx", exports), s.exportHandler.ExportCensus)
	mux.HandleFunc(fmt.Sprintf("GET %s/voters.xlsx", exports), s.exportHandler.ExportVoters)
	mux.HandleFunc(fmt.Sprintf("GET %s/register.pdf", exports), s.exportHandler.ExportRegister)
	mux.HandleFunc(fmt.Sprintf("GET %s/backup.json", exports), s.exportHandler.ExportBackup)

	backup := apiBasePath + constants.BackupApiPath
	mux.HandleFunc(fmt.Sprintf("POST %s/restore", backup), s.backupHandler.Restore)
	mux.HandleFunc(fmt.Sprintf("POST %s/clear", backup), s.backupHandler.ClearAll)
}
