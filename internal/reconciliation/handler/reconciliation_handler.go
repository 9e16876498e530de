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

	"github.com/wso2/blo-register-service/internal/reconciliation/model"
	"github.com/wso2/blo-register-service/internal/reconciliation/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type ReconciliationHandler struct {
	service service.ReconciliationServiceInterface
}

func NewReconciliationHandler(reconciliationService service.ReconciliationServiceInterface) *ReconciliationHandler {

	return &ReconciliationHandler{service: reconciliationService}
}

func (rh *ReconciliationHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {

	suggestions, err := rh.service.Suggest(r.PathValue("voterId"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []model.LinkSuggestion{}
	}
	utils.RespondJSON(w, http.StatusOK, suggestions)
}

func (rh *ReconciliationHandler) AutoLink(w http.ResponseWriter, r *http.Request) {

	linked := rh.service.AutoLinkAll(r.Context())
	utils.RespondJSON(w, http.StatusOK, model.AutoLinkResult{Linked: linked})
}

func (rh *ReconciliationHandler) LinkVoter(w http.ResponseWriter, r *http.Request) {

	var request model.LinkRequest
	if err := utils.DecodeJSONBody(r, &request, "voter link"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	voter, err := rh.service.LinkVoterToMember(r.Context(), r.PathValue("voterId"), request.MemberId, request.SyncDetails)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, voter)
}

func (rh *ReconciliationHandler) SetVoterStatus(w http.ResponseWriter, r *http.Request) {

	var request model.StatusRequest
	if err := utils.DecodeJSONBody(r, &request, "voter status"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	change, err := rh.service.SetVoterStatus(r.Context(), r.PathValue("voterId"), request.Status)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, change)
}
