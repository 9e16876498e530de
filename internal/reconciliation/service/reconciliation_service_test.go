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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

type fixture struct {
	service    *ReconciliationService
	households *censusStore.HouseholdStore
	voters     *electoralStore.VoterStore
}

func newFixture() fixture {
	kv := storage.NewMemoryStore()
	households := censusStore.NewHouseholdStore(kv)
	voters := electoralStore.NewVoterStore(kv)
	households.Add(models.Household{Id: "h1", HouseNo: "7", Members: []models.Member{
		{Id: "m1", Name: "Ravi Kumar", Dob: "1980-01-01", Gender: models.GenderMale, IsHof: true,
			Status: models.StatusActive},
	}})
	voters.ReplaceAll([]models.Voter{
		{Id: "v1", Name: "Kumar", Age: 30, HouseNo: "9", Gender: models.GenderOther, Status: models.StatusActive},
		{Id: "v2", Name: "Ghost", Status: models.StatusActive, LinkedMemberId: "deleted"},
	})
	return fixture{
		service:    NewReconciliationService(households, voters, func() time.Time { return today }),
		households: households,
		voters:     voters,
	}
}

func TestLinkVoterToMemberWithSync(t *testing.T) {
	f := newFixture()

	voter, err := f.service.LinkVoterToMember(context.Background(), "v1", "m1", true)
	require.NoError(t, err)
	assert.Equal(t, "m1", voter.LinkedMemberId)
	assert.Equal(t, "Ravi Kumar", voter.Name)
	assert.Equal(t, models.GenderMale, voter.Gender)
	assert.Equal(t, 44, voter.Age)
	assert.Equal(t, "7", voter.HouseNo)

	stored, _ := f.voters.Get("v1")
	assert.Equal(t, voter, stored)
}

func TestLinkVoterToUnknownMemberKeepsDetails(t *testing.T) {
	f := newFixture()

	voter, err := f.service.LinkVoterToMember(context.Background(), "v1", "missing", true)
	require.NoError(t, err)
	assert.Equal(t, "missing", voter.LinkedMemberId)
	assert.Equal(t, "Kumar", voter.Name)
	assert.Equal(t, "9", voter.HouseNo)
}

func TestLinkVoterValidation(t *testing.T) {
	f := newFixture()

	_, err := f.service.LinkVoterToMember(context.Background(), "v1", " ", false)
	assert.True(t, errors2.HasCode(err, errors2.BAD_REQUEST))

	_, err = f.service.LinkVoterToMember(context.Background(), "nope", "m1", false)
	assert.True(t, errors2.HasCode(err, errors2.VOTER_NOT_FOUND))
}

func TestSetVoterStatusPropagatesToLinkedMember(t *testing.T) {
	f := newFixture()
	_, err := f.service.LinkVoterToMember(context.Background(), "v1", "m1", false)
	require.NoError(t, err)

	change, err := f.service.SetVoterStatus(context.Background(), "v1", models.StatusExpired)
	require.NoError(t, err)
	assert.True(t, change.MemberSynced)
	assert.Equal(t, models.StatusExpired, change.Voter.Status)

	member, _ := f.households.FindMember("m1")
	assert.Equal(t, models.StatusExpired, member.Status)

	// Any status may follow any other.
	change, err = f.service.SetVoterStatus(context.Background(), "v1", models.StatusActive)
	require.NoError(t, err)
	assert.True(t, change.MemberSynced)
}

func TestSetVoterStatusWithDanglingLink(t *testing.T) {
	f := newFixture()

	change, err := f.service.SetVoterStatus(context.Background(), "v2", models.StatusShifted)
	require.NoError(t, err)
	assert.False(t, change.MemberSynced)

	voter, _ := f.voters.Get("v2")
	assert.Equal(t, models.StatusShifted, voter.Status)
	member, _ := f.households.FindMember("m1")
	assert.Equal(t, models.StatusActive, member.Status)
}

func TestSetVoterStatusRejectsUnknownStatus(t *testing.T) {
	f := newFixture()
	_, err := f.service.SetVoterStatus(context.Background(), "v1", "Moved")
	assert.True(t, errors2.HasCode(err, errors2.INVALID_STATUS))
}

func TestAutoLinkAllStoresLinks(t *testing.T) {
	f := newFixture()
	f.voters.Add(models.Voter{Id: "v3", Name: "ravi kumar", Gender: models.GenderMale, HouseNo: "7"})

	assert.Equal(t, 1, f.service.AutoLinkAll(context.Background()))
	voter, _ := f.voters.Get("v3")
	assert.Equal(t, "m1", voter.LinkedMemberId)

	assert.Equal(t, 0, f.service.AutoLinkAll(context.Background()))
}

func TestSuggest(t *testing.T) {
	f := newFixture()

	suggestions, err := f.service.Suggest("v1")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "m1", suggestions[0].Member.Id)
	assert.Equal(t, 3, suggestions[0].Score)

	_, err = f.service.Suggest("missing")
	assert.True(t, errors2.HasCode(err, errors2.VOTER_NOT_FOUND))
}
