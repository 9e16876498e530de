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

	"github.com/wso2/blo-register-service/internal/settings/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type SettingsHandler struct {
	service service.SettingsServiceInterface
}

func NewSettingsHandler(settingsService service.SettingsServiceInterface) *SettingsHandler {

	return &SettingsHandler{service: settingsService}
}

func (sh *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, sh.service.GetSettings())
}

// UpdateSettings applies the given fields over the current settings.
func (sh *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {

	settings := sh.service.GetSettings()
	if err := utils.DecodeJSONBody(r, &settings, "settings"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, sh.service.SaveSettings(r.Context(), settings))
}
