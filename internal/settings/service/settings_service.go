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

package service

import (
	"context"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type SettingsServiceInterface interface {
	GetSettings() models.Settings
	SaveSettings(ctx context.Context, settings models.Settings) models.Settings
}

type SettingsService struct {
	repository store.SettingsRepository
}

func NewSettingsService(repository store.SettingsRepository) *SettingsService {

	return &SettingsService{repository: repository}
}

func (ss *SettingsService) GetSettings() models.Settings {

	return ss.repository.Get()
}

// SaveSettings replaces the officer and jurisdiction details.
func (ss *SettingsService) SaveSettings(ctx context.Context, settings models.Settings) models.Settings {

	ss.repository.Save(settings)
	utils.Audit(ctx, "settings", log.TargetTypeSettings, log.ActionSaveSettings, map[string]string{
		"assemblyConstituency": settings.AssemblyConstituency,
		"part":                 settings.Part,
	})
	return settings
}
