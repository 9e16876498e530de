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

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	censusModel "github.com/wso2/blo-register-service/internal/census/model"
	electoralModel "github.com/wso2/blo-register-service/internal/electoral/model"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/managers"
	"github.com/wso2/blo-register-service/internal/system/storage"
	"github.com/wso2/blo-register-service/test/integration/utils"
)

var today = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newPostgresApplication(t *testing.T) *managers.Application {
	t.Helper()
	kv, closer, err := storage.NewKeyValueStore("", config.Config{
		Storage: config.StorageConfig{Type: config.StorageTypePostgres},
	})
	require.NoError(t, err)
	t.Cleanup(closer)
	return managers.NewApplication(kv, nil, func() time.Time { return today })
}

func TestRegisterSurvivesRestart(t *testing.T) {
	require.NoError(t, utils.ClearStorage(testDB.DB))
	ctx := context.Background()

	first := newPostgresApplication(t)
	household, err := first.HouseholdService.AddHousehold(ctx, censusModel.HouseholdRequest{
		HouseNo:      "12",
		Address:      "Main Road",
		HeadOfFamily: censusModel.MemberRequest{Name: "Ravi Kumar", Dob: "1980-01-01", Gender: models.GenderMale},
	})
	require.NoError(t, err)
	voter, err := first.VoterService.AddVoter(ctx, electoralModel.VoterRequest{
		Name: "Ravi Kumar", Gender: models.GenderMale, Age: models.IntPtr(44), HouseNo: "12",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ReconciliationService.AutoLinkAll(ctx))
	first.SettingsService.SaveSettings(ctx, models.Settings{BloName: "Lakshmi", Part: "42"})

	second := newPostgresApplication(t)
	households := second.HouseholdService.ListHouseholds("")
	require.Len(t, households, 1)
	assert.Equal(t, household, households[0])

	stored, err := second.VoterService.GetVoter(voter.Id)
	require.NoError(t, err)
	assert.Equal(t, household.Members[0].Id, stored.LinkedMemberId)
	assert.Equal(t, "Lakshmi", second.SettingsService.GetSettings().BloName)

	assert.NoError(t, second.HealthService.CheckReadiness())
}

func TestBackupRestoreAgainstPostgres(t *testing.T) {
	require.NoError(t, utils.ClearStorage(testDB.DB))
	ctx := context.Background()

	app := newPostgresApplication(t)
	result, err := app.BackupService.Restore(ctx, []byte(`{
	  "bloInfo": {"bloName": "Lakshmi", "assemblyConstituency": "North", "part": "7"},
	  "households": [{"id": "h1", "houseNumber": "3", "headOfFamily": {"id": "m1", "name": "Meena", "dob": "1970-01-01"}}],
	  "voters": [{"id": "v1", "name": "Meena", "age": 54, "status": "Expired", "linkedMemberId": "m1"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Households)

	reloaded := newPostgresApplication(t)
	stats := reloaded.AggregationService.DashboardStats()
	assert.Equal(t, 1, stats.Census.TotalHouseholds)
	assert.Equal(t, 1, stats.Election.MarkedVoters)
	assert.Equal(t, 0, stats.Census.UnregisteredAdults)

	payload, err := reloaded.ExportService.RegisterPDF()
	require.NoError(t, err)
	assert.NotEmpty(t, payload)

	reloaded.BackupService.ClearAll(ctx)
	assert.Empty(t, newPostgresApplication(t).HouseholdService.ListHouseholds(""))
}
