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

	"github.com/wso2/blo-register-service/internal/census/model"
	"github.com/wso2/blo-register-service/internal/census/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type HouseholdHandler struct {
	service service.HouseholdServiceInterface
}

func NewHouseholdHandler(householdService service.HouseholdServiceInterface) *HouseholdHandler {

	return &HouseholdHandler{service: householdService}
}

// GetHouseholds lists households, optionally filtered by ?search=.
func (hh *HouseholdHandler) GetHouseholds(w http.ResponseWriter, r *http.Request) {

	households := hh.service.ListHouseholds(r.URL.Query().Get("search"))
	utils.RespondJSON(w, http.StatusOK, households)
}

func (hh *HouseholdHandler) GetHousehold(w http.ResponseWriter, r *http.Request) {

	household, err := hh.service.GetHousehold(r.PathValue("householdId"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, household)
}

func (hh *HouseholdHandler) AddHousehold(w http.ResponseWriter, r *http.Request) {

	var request model.HouseholdRequest
	if err := utils.DecodeJSONBody(r, &request, "household"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	household, err := hh.service.AddHousehold(r.Context(), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, household)
}

func (hh *HouseholdHandler) UpdateHousehold(w http.ResponseWriter, r *http.Request) {

	var request model.HouseholdUpdateRequest
	if err := utils.DecodeJSONBody(r, &request, "household"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	household, err := hh.service.UpdateHousehold(r.Context(), r.PathValue("householdId"), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, household)
}

func (hh *HouseholdHandler) DeleteHousehold(w http.ResponseWriter, r *http.Request) {

	if err := hh.service.DeleteHousehold(r.Context(), r.PathValue("householdId")); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hh *HouseholdHandler) AddMember(w http.ResponseWriter, r *http.Request) {

	var request model.MemberRequest
	if err := utils.DecodeJSONBody(r, &request, "member"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	member, err := hh.service.AddMember(r.Context(), r.PathValue("householdId"), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, member)
}

func (hh *HouseholdHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {

	var request model.MemberRequest
	if err := utils.DecodeJSONBody(r, &request, "member"); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	member, err := hh.service.UpdateMember(r.Context(), r.PathValue("householdId"), r.PathValue("memberId"), request)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, member)
}

func (hh *HouseholdHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {

	if err := hh.service.DeleteMember(r.Context(), r.PathValue("householdId"), r.PathValue("memberId")); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
