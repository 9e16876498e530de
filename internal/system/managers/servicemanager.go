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

package managers

import (
	"net/http"

	"github.com/wso2/blo-register-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
	app *Application
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, app *Application) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
		app: app,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	services.NewHealthService(sm.mux, apiBasePath, sm.app.HealthService)
	services.NewHouseholdService(sm.mux, apiBasePath, sm.app.HouseholdService)
	services.NewVoterService(sm.mux, apiBasePath, sm.app.VoterService, sm.app.ReconciliationService)
	services.NewReportService(sm.mux, apiBasePath, sm.app.AggregationService)
	services.NewTransferService(sm.mux, apiBasePath, sm.app.ImportService, sm.app.ExportService, sm.app.BackupService)
	services.NewSettingsService(sm.mux, apiBasePath, sm.app.SettingsService)
	services.NewAssistantService(sm.mux, apiBasePath, sm.app.AssistantService)
	return nil
}
