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
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/blo-register-service/internal/backup/model"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	settingsStore "github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/constants"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

type backupFixture struct {
	kv         *storage.MemoryStore
	service    *BackupService
	households *censusStore.HouseholdStore
	voters     *electoralStore.VoterStore
	settings   *settingsStore.SettingsStore
}

func newBackupFixture() backupFixture {
	kv := storage.NewMemoryStore()
	f := backupFixture{
		kv:         kv,
		households: censusStore.NewHouseholdStore(kv),
		voters:     electoralStore.NewVoterStore(kv),
		settings:   settingsStore.NewSettingsStore(kv),
	}
	f.service = NewBackupService(f.households, f.voters, f.settings)
	return f
}

func TestBackupRoundTrip(t *testing.T) {
	source := newBackupFixture()
	source.households.ReplaceAll([]models.Household{{Id: "h1", HouseNo: "1", Address: "Main Road", Members: []models.Member{
		{Id: "m1", Name: "Ravi", Dob: "1980-01-01", Gender: models.GenderMale, IsHof: true, Phone: "9876543210",
			Status: models.StatusActive},
		{Id: "m2", Name: "Sita", Dob: "1984-01-01", Gender: models.GenderFemale, Status: models.StatusShifted},
	}}})
	source.voters.ReplaceAll([]models.Voter{{Id: "v1", Name: "Ravi", Age: 44, Gender: models.GenderMale,
		Status: models.StatusActive, LinkedMemberId: "m1", PartSerialNo: models.IntPtr(4)}})
	source.settings.Save(models.Settings{BloName: "Lakshmi", AssemblyConstituency: "North", Part: "12"})

	payload, err := source.service.Export()
	require.NoError(t, err)

	target := newBackupFixture()
	result, err := target.service.Restore(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, model.RestoreResult{Households: 1, Voters: 1, Settings: true}, result)

	if diff := cmp.Diff(source.households.List(), target.households.List()); diff != "" {
		t.Errorf("households differ (-source +target):\n%s", diff)
	}
	if diff := cmp.Diff(source.voters.List(), target.voters.List()); diff != "" {
		t.Errorf("voters differ (-source +target):\n%s", diff)
	}
	assert.Equal(t, source.settings.Get(), target.settings.Get())
}

func TestExportOfEmptyRegisterClearsOnRestore(t *testing.T) {
	empty := newBackupFixture()
	payload, err := empty.service.Export()
	require.NoError(t, err)

	var document map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &document))
	assert.JSONEq(t, "[]", string(document["households"]))
	assert.JSONEq(t, "[]", string(document["voters"]))

	target := newBackupFixture()
	target.households.Add(models.Household{Id: "h1", HouseNo: "1"})
	_, err = target.service.Restore(context.Background(), payload)
	require.NoError(t, err)
	assert.Empty(t, target.households.List())
}

func TestRestoreLegacyHouseholdShape(t *testing.T) {
	f := newBackupFixture()
	legacy := `{
	  "households": [{
	    "id": "h1",
	    "houseNumber": "12",
	    "address": "Old Lane",
	    "headOfFamily": {"id": "m1", "name": "Ravi", "dob": "1980-01-01", "gender": "Male", "phone": "9876543210"},
	    "members": [
	      {"id": "m1", "name": "Ravi", "dob": "1980-01-01", "gender": "Male"},
	      {"id": "m2", "name": "Sita", "dob": "1984-01-01", "gender": "Female", "isHof": true}
	    ]
	  }]
	}`

	result, err := f.service.Restore(context.Background(), []byte(legacy))
	require.NoError(t, err)
	assert.Equal(t, model.RestoreResult{Households: 1}, result)

	households := f.households.List()
	require.Len(t, households, 1)
	household := households[0]
	assert.Equal(t, "12", household.HouseNo)
	require.Len(t, household.Members, 2)
	assert.Equal(t, "m1", household.Members[0].Id)
	assert.True(t, household.Members[0].IsHof)
	assert.Equal(t, "9876543210", household.Members[0].Phone)
	assert.False(t, household.Members[1].IsHof)
	assert.Equal(t, models.StatusActive, household.Members[1].Status)
}

func TestRestoreMergesPartialSettings(t *testing.T) {
	f := newBackupFixture()
	f.settings.Save(models.Settings{BloName: "Lakshmi", Part: "12"})

	result, err := f.service.Restore(context.Background(), []byte(`{"settings": {"part": "99"}}`))
	require.NoError(t, err)
	assert.True(t, result.Settings)
	assert.Equal(t, "Lakshmi", f.settings.Get().BloName)
	assert.Equal(t, "99", f.settings.Get().Part)
}

func TestRestoreRejectsBadDocumentsWithoutChanges(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors2.ErrorMessage
	}{
		{"empty", "  ", errors2.MALFORMED_BACKUP},
		{"not json", "{households:", errors2.MALFORMED_BACKUP},
		{"array document", `[1, 2]`, errors2.INVALID_BACKUP},
		{"no known keys", `{"foo": 1}`, errors2.INVALID_BACKUP},
		{"only nulls", `{"households": null, "voters": null}`, errors2.INVALID_BACKUP},
		{"bad voter", `{"households": [], "voters": [{"age": "old"}]}`, errors2.MALFORMED_BACKUP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBackupFixture()
			f.households.Add(models.Household{Id: "keep", HouseNo: "1"})

			_, err := f.service.Restore(context.Background(), []byte(tt.data))
			assert.True(t, errors2.HasCode(err, tt.code), "%v", err)
			assert.Len(t, f.households.List(), 1)
		})
	}
}

func TestClearAll(t *testing.T) {
	f := newBackupFixture()
	f.households.Add(models.Household{Id: "h1", HouseNo: "1"})
	f.voters.Add(models.Voter{Id: "v1"})
	f.settings.Save(models.Settings{BloName: "Lakshmi"})

	f.service.ClearAll(context.Background())

	assert.Empty(t, f.households.List())
	assert.Empty(t, f.voters.List())
	assert.Equal(t, models.DefaultSettings(), f.settings.Get())
	for _, key := range []string{constants.HouseholdsStorageKey, constants.VotersStorageKey, constants.SettingsStorageKey} {
		_, found, err := f.kv.Load(key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}
