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

	"github.com/wso2/blo-register-service/internal/assistant/model"
	"github.com/wso2/blo-register-service/internal/assistant/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type AssistantHandler struct {
	service service.AssistantServiceInterface
}

func NewAssistantHandler(assistantService service.AssistantServiceInterface) *AssistantHandler {

	return &AssistantHandler{service: assistantService}
}

func (ah *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {

	var request model.Question
	if err := utils.DecodeJSONBody(r, &request, "question"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	answer, err := ah.service.Ask(r.Context(), request.Question)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, answer)
}
