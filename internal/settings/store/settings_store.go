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

package store

import (
	"sync"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

// SettingsRepository holds the single settings record.
type SettingsRepository interface {
	Get() models.Settings
	Save(settings models.Settings)
	Reset()
}

type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
	kv       storage.KeyValueStore
}

// NewSettingsStore loads persisted settings, falling back to the defaults.
func NewSettingsStore(kv storage.KeyValueStore) *SettingsStore {
	settings := models.DefaultSettings()
	storage.Restore(kv, constants.SettingsStorageKey, &settings)
	return &SettingsStore{settings: settings, kv: kv}
}

func (s *SettingsStore) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Reset restores the defaults and drops the stored record.
func (s *SettingsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = models.DefaultSettings()
	storage.Forget(s.kv, constants.SettingsStorageKey)
}

func (s *SettingsStore) Save(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	storage.Persist(s.kv, constants.SettingsStorageKey, settings)
}
