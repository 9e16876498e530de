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
	"fmt"

	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService checks that local storage answers.
type HealthCheckService struct {
	kv storage.KeyValueStore
}

func NewHealthCheckService(kv storage.KeyValueStore) *HealthCheckService {
	return &HealthCheckService{kv: kv}
}

// CheckReadiness performs a lightweight read against local storage.
func (h *HealthCheckService) CheckReadiness() error {
	if h.kv == nil {
		return fmt.Errorf("local storage is not initialized")
	}
	if _, _, err := h.kv.Load(constants.SettingsStorageKey); err != nil {
		return fmt.Errorf("local storage check failed: %v", err)
	}
	return nil
}
