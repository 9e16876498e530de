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

	"github.com/wso2/blo-register-service/internal/electoral/handler"
	"github.com/wso2/blo-register-service/internal/electoral/service"
	reconciliationHandler "github.com/wso2/blo-register-service/internal/reconciliation/handler"
	reconciliationService "github.com/wso2/blo-register-service/internal/reconciliation/service"
	"github.com/wso2/blo-register-service/internal/system/constants"
)

// VoterService routes the electoral roll endpoints, including the per voter link and status
// operations owned by reconciliation.
type VoterService struct {
	voterHandler          *handler.VoterHandler
	reconciliationHandler *reconciliationHandler.ReconciliationHandler
}

func NewVoterService(mux *http.ServeMux, apiBasePath string, voterService service.VoterServiceInterface,
	reconciliation reconciliationService.ReconciliationServiceInterface) *VoterService {

	instance := &VoterService{
		voterHandler:          handler.NewVoterHandler(voterService),
		reconciliationHandler: reconciliationHandler.NewReconciliationHandler(reconciliation),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *VoterService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	base := apiBasePath + constants.VotersApiPath
	mux.HandleFunc(fmt.Sprintf("GET %s", base), s.voterHandler.GetVoters)
	mux.HandleFunc(fmt.Sprintf("POST %s", base), s.voterHandler.AddVoter)
	mux.HandleFunc(fmt.Sprintf("GET %s/groups", base), s.voterHandler.GetVoterGroups)
	mux.HandleFunc(fmt.Sprintf("GET %s/{voterId}", base), s.voterHandler.GetVoter)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{voterId}", base), s.voterHandler.UpdateVoter)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{voterId}/status", base), s.reconciliationHandler.SetVoterStatus)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{voterId}/link", base), s.reconciliationHandler.LinkVoter)
	mux.HandleFunc(fmt.Sprintf("GET %s/{voterId}/suggestions", base), s.reconciliationHandler.GetSuggestions)

	mux.HandleFunc(fmt.Sprintf("POST %s%s/auto-link", apiBasePath, constants.ReconciliationApiPath),
		s.reconciliationHandler.AutoLink)
}
