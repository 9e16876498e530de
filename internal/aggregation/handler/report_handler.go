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

	"github.com/wso2/blo-register-service/internal/aggregation/service"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type ReportHandler struct {
	service service.AggregationServiceInterface
}

func NewReportHandler(aggregationService service.AggregationServiceInterface) *ReportHandler {

	return &ReportHandler{service: aggregationService}
}

func (rh *ReportHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, rh.service.DashboardStats())
}

func (rh *ReportHandler) GetAgeCohorts(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, rh.service.AgeCohorts())
}

func (rh *ReportHandler) GetProspectiveVoters(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, rh.service.ProspectiveVoters())
}

func (rh *ReportHandler) GetUnregisteredAdults(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, rh.service.UnregisteredAdults())
}

func (rh *ReportHandler) GetMarkedVoters(w http.ResponseWriter, r *http.Request) {

	utils.RespondJSON(w, http.StatusOK, rh.service.MarkedVoters())
}
