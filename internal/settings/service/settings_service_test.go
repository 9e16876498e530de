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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

func TestSettingsDefaultsAndPersistence(t *testing.T) {
	kv := storage.NewMemoryStore()
	svc := NewSettingsService(store.NewSettingsStore(kv))
	assert.Equal(t, "BLO Name", svc.GetSettings().BloName)
	assert.Equal(t, "Constituency", svc.GetSettings().AssemblyConstituency)

	saved := svc.SaveSettings(context.Background(), models.Settings{
		BloName: "Lakshmi", AssemblyConstituency: "North", Part: "42",
	})
	assert.Equal(t, "Lakshmi", saved.BloName)

	reloaded := NewSettingsService(store.NewSettingsStore(kv))
	assert.Equal(t, saved, reloaded.GetSettings())
}
