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
	"context"

	aggregationService "github.com/wso2/blo-register-service/internal/aggregation/service"
	assistantService "github.com/wso2/blo-register-service/internal/assistant/service"
	backupService "github.com/wso2/blo-register-service/internal/backup/service"
	censusService "github.com/wso2/blo-register-service/internal/census/service"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralService "github.com/wso2/blo-register-service/internal/electoral/service"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/exporter"
	healthService "github.com/wso2/blo-register-service/internal/health_check/service"
	"github.com/wso2/blo-register-service/internal/importer"
	reconciliationService "github.com/wso2/blo-register-service/internal/reconciliation/service"
	settingsService "github.com/wso2/blo-register-service/internal/settings/service"
	settingsStore "github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/storage"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

// Application holds the repositories and services of one register. Both the HTTP server and the
// command line tool are built on it.
type Application struct {
	Households *censusStore.HouseholdStore
	Voters     *electoralStore.VoterStore
	Settings   *settingsStore.SettingsStore

	HouseholdService      *censusService.HouseholdService
	VoterService          *electoralService.VoterService
	SettingsService       *settingsService.SettingsService
	ReconciliationService *reconciliationService.ReconciliationService
	AggregationService    *aggregationService.AggregationService
	ImportService         *importer.ImportService
	ExportService         *exporter.ExportService
	BackupService         *backupService.BackupService
	AssistantService      *assistantService.AssistantService
	HealthService         *healthService.HealthCheckService

	closers []func()
}

// NewApplication wires every service over the given local storage. assistant may be nil.
func NewApplication(kv storage.KeyValueStore, assistant assistantService.Client, clock utils.Clock) *Application {

	households := censusStore.NewHouseholdStore(kv)
	voters := electoralStore.NewVoterStore(kv)
	settings := settingsStore.NewSettingsStore(kv)
	aggregation := aggregationService.NewAggregationService(households, voters, settings, clock)

	return &Application{
		Households:            households,
		Voters:                voters,
		Settings:              settings,
		HouseholdService:      censusService.NewHouseholdService(households, clock),
		VoterService:          electoralService.NewVoterService(voters, clock),
		SettingsService:       settingsService.NewSettingsService(settings),
		ReconciliationService: reconciliationService.NewReconciliationService(households, voters, clock),
		AggregationService:    aggregation,
		ImportService:         importer.NewImportService(households, voters, clock),
		ExportService:         exporter.NewExportService(households, voters, aggregation),
		BackupService:         backupService.NewBackupService(households, voters, settings),
		AssistantService:      assistantService.NewAssistantService(households, voters, assistant),
		HealthService:         healthService.NewHealthCheckService(kv),
	}
}

// BootstrapApplication opens the configured local storage and assistant client and wires the
// application over them.
func BootstrapApplication(ctx context.Context, bloHome string, cfg *config.Config) (*Application, error) {

	logger := log.GetLogger()
	kv, closeStorage, err := storage.NewKeyValueStore(bloHome, *cfg)
	if err != nil {
		return nil, err
	}

	var assistant assistantService.Client
	if cfg.Assistant.APIKey != "" {
		client, err := assistantService.NewGeminiClient(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			logger.Warn("Assistant is unavailable", log.Error(err))
		} else {
			assistant = client
		}
	} else {
		logger.Info("No assistant API key configured, questions will receive the fallback answer")
	}

	app := NewApplication(kv, assistant, utils.SystemClock)
	app.closers = append(app.closers, closeStorage)
	return app, nil
}

// Close releases the storage backend.
func (a *Application) Close() {

	for _, closer := range a.closers {
		if closer != nil {
			closer()
		}
	}
}
