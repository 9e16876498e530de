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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

func TestSettingsStoreDefaults(t *testing.T) {
	assert.Equal(t, models.DefaultSettings(), NewSettingsStore(storage.NewMemoryStore()).Get())
}

func TestSettingsStorePersists(t *testing.T) {
	kv := storage.NewMemoryStore()
	NewSettingsStore(kv).Save(models.Settings{BloName: "Lakshmi", Part: "42"})

	settings := NewSettingsStore(kv).Get()
	assert.Equal(t, "Lakshmi", settings.BloName)
	assert.Equal(t, "42", settings.Part)
}

func TestSettingsStoreFallsBackOnCorruptData(t *testing.T) {
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Save(constants.SettingsStorageKey, []byte("{broken")))

	assert.Equal(t, models.DefaultSettings(), NewSettingsStore(kv).Get())
}
