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

	"github.com/wso2/blo-register-service/internal/aggregation/handler"
	"github.com/wso2/blo-register-service/internal/aggregation/service"
	"github.com/wso2/blo-register-service/internal/system/constants"
)

type ReportService struct {
	reportHandler *handler.ReportHandler
}

func NewReportService(mux *http.ServeMux, apiBasePath string, aggregation service.AggregationServiceInterface) *ReportService {

	instance := &ReportService{
		reportHandler: handler.NewReportHandler(aggregation),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ReportService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	base := apiBasePath + constants.ReportsApiPath
	mux.HandleFunc(fmt.Sprintf("GET %s/dashboard", base), s.reportHandler.GetDashboard)
	mux.HandleFunc(fmt.Sprintf("GET %s/age-cohorts", base), s.reportHandler.GetAgeCohorts)
	mux.HandleFunc(fmt.Sprintf("GET %s/prospective-voters", base), s.reportHandler.GetProspectiveVoters)
	mux.HandleFunc(fmt.Sprintf("GET %s/unregistered-adults", base), s.reportHandler.GetUnregisteredAdults)
	mux.HandleFunc(fmt.Sprintf("GET %s/marked-voters", base), s.reportHandler.GetMarkedVoters)
}
