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

	"github.com/wso2/blo-register-service/internal/electoral/model"
	"github.com/wso2/blo-register-service/internal/electoral/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type VoterHandler struct {
	service service.VoterServiceInterface
}

func NewVoterHandler(voterService service.VoterServiceInterface) *VoterHandler {

	return &VoterHandler{service: voterService}
}

// GetVoters lists voters filtered by ?status= and ?search=, with per status counts of the whole roll.
func (vh *VoterHandler) GetVoters(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	voters, err := vh.service.ListVoters(query.Get("status"), query.Get("search"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, model.VoterListResponse{
		Voters: voters,
		Counts: vh.service.StatusCounts(),
	})
}

// GetVoterGroups returns the roll grouped by section and house.
func (vh *VoterHandler) GetVoterGroups(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	groups, err := vh.service.GroupVoters(query.Get("status"), query.Get("search"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, groups)
}

func (vh *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {

	voter, err := vh.service.GetVoter(r.PathValue("voterId"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, voter)
}

func (vh *VoterHandler) AddVoter(w http.ResponseWriter, r *http.Request) {

	var request model.VoterRequest
	if err := utils.DecodeJSONBody(r, &request, "voter"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	voter, err := vh.service.AddVoter(r.Context(), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, voter)
}

func (vh *VoterHandler) UpdateVoter(w http.ResponseWriter, r *http.Request) {

	var request model.VoterRequest
	if err := utils.DecodeJSONBody(r, &request, "voter"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	voter, err := vh.service.UpdateVoter(r.Context(), r.PathValue("voterId"), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, voter)
}
