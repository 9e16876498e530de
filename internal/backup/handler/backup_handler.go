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
	"io"
	"net/http"

	"github.com/wso2/blo-register-service/internal/backup/service"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

const maxBackupSize = 64 << 20

type BackupHandler struct {
	service service.BackupServiceInterface
}

func NewBackupHandler(backupService service.BackupServiceInterface) *BackupHandler {

	return &BackupHandler{service: backupService}
}

// Restore reads a JSON backup from the request body.
func (bh *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBackupSize))
	if err != nil {
		utils.HandleError(w, r, errors2.NewBadRequestError(errors2.MALFORMED_BACKUP, "Unable to read the backup file."))
		return
	}
	result, err := bh.service.Restore(r.Context(), data)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

func (bh *BackupHandler) ClearAll(w http.ResponseWriter, r *http.Request) {

	bh.service.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
