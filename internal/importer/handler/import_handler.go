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

	"github.com/wso2/blo-register-service/internal/importer"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

const maxImportSize = 32 << 20

type ImportHandler struct {
	service importer.ImportServiceInterface
}

func NewImportHandler(importService importer.ImportServiceInterface) *ImportHandler {

	return &ImportHandler{service: importService}
}

// ImportCensus reads an xlsx body; ?mode= is merge (default) or replace.
func (ih *ImportHandler) ImportCensus(w http.ResponseWriter, r *http.Request) {

	ih.importKind(w, r, importer.KindCensus)
}

func (ih *ImportHandler) ImportVoters(w http.ResponseWriter, r *http.Request) {

	ih.importKind(w, r, importer.KindVoters)
}

func (ih *ImportHandler) importKind(w http.ResponseWriter, r *http.Request, kind importer.Kind) {

	mode := importer.ModeMerge
	if value := r.URL.Query().Get("mode"); value != "" {
		parsed, err := importer.ParseMode(value)
		if err != nil {
			utils.HandleError(w, r, err)
			return
		}
		mode = parsed
	}
	body := http.MaxBytesReader(w, r.Body, maxImportSize)
	result, err := ih.service.Import(r.Context(), kind, body, mode)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}
