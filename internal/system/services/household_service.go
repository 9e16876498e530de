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

	"github.com/wso2/blo-register-service/internal/census/handler"
	"github.com/wso2/blo-register-service/internal/census/service"
	"github.com/wso2/blo-register-service/internal/system/constants"
)

type HouseholdService struct {
	householdHandler *handler.HouseholdHandler
}

func NewHouseholdService(mux *http.ServeMux, apiBasePath string, householdService service.HouseholdServiceInterface) *HouseholdService {

	instance := &HouseholdService{
		householdHandler: handler.NewHouseholdHandler(householdService),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *HouseholdService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	base := apiBasePath + constants.HouseholdsApiPath
	mux.HandleFunc(fmt.Sprintf("GET %s", base), s.householdHandler.GetHouseholds)
	mux.HandleFunc(fmt.Sprintf("POST %s", base), s.householdHandler.AddHousehold)
	mux.HandleFunc(fmt.Sprintf("GET %s/{householdId}", base), s.householdHandler.GetHousehold)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{householdId}", base), s.householdHandler.UpdateHousehold)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/{householdId}", base), s.householdHandler.DeleteHousehold)
	mux.HandleFunc(fmt.Sprintf("POST %s/{householdId}/members", base), s.householdHandler.AddMember)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{householdId}/members/{memberId}", base), s.householdHandler.UpdateMember)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/{householdId}/members/{memberId}", base), s.householdHandler.DeleteMember)
}
