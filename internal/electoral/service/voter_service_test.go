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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/blo-register-service/internal/electoral/model"
	"github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

func newTestVoterService(voters ...models.Voter) (*VoterService, *store.VoterStore) {
	repository := store.NewVoterStore(storage.NewMemoryStore())
	repository.ReplaceAll(voters)
	clock := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return NewVoterService(repository, clock), repository
}

func TestAddVoterDerivesAgeFromDob(t *testing.T) {
	svc, _ := newTestVoterService()

	voter, err := svc.AddVoter(context.Background(), model.VoterRequest{
		EpicNo: " ABC1234567 ", Name: "Ravi Kumar", Gender: "male", Dob: "2000-06-16", HouseNo: "12",
	})
	require.NoError(t, err)
	assert.Equal(t, 23, voter.Age)
	assert.Equal(t, "ABC1234567", voter.EpicNo)
	assert.Equal(t, models.GenderMale, voter.Gender)
	assert.Equal(t, models.StatusActive, voter.Status)
	assert.NotEmpty(t, voter.Id)

	explicit, err := svc.AddVoter(context.Background(), model.VoterRequest{Name: "Sita", Age: models.IntPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, explicit.Age)
}

func TestAddVoterValidation(t *testing.T) {
	svc, _ := newTestVoterService()

	_, err := svc.AddVoter(context.Background(), model.VoterRequest{Name: " "})
	assert.True(t, errors2.HasCode(err, errors2.INVALID_VOTER))

	_, err = svc.AddVoter(context.Background(), model.VoterRequest{Name: "A", Status: "Moved"})
	assert.True(t, errors2.HasCode(err, errors2.INVALID_STATUS))

	_, err = svc.AddVoter(context.Background(), model.VoterRequest{Name: "A", Age: models.IntPtr(-1)})
	assert.True(t, errors2.HasCode(err, errors2.INVALID_VOTER))
}

func TestUpdateVoterKeepsLink(t *testing.T) {
	svc, _ := newTestVoterService(models.Voter{
		Id: "v1", Name: "Ravi", Status: models.StatusShifted, LinkedMemberId: "m1",
	})

	voter, err := svc.UpdateVoter(context.Background(), "v1", model.VoterRequest{Name: "Ravi Kumar", Age: models.IntPtr(45)})
	require.NoError(t, err)
	assert.Equal(t, "m1", voter.LinkedMemberId)
	assert.Equal(t, models.StatusShifted, voter.Status)
	assert.Equal(t, "Ravi Kumar", voter.Name)

	_, err = svc.UpdateVoter(context.Background(), "v9", model.VoterRequest{Name: "X"})
	assert.True(t, errors2.HasCode(err, errors2.VOTER_NOT_FOUND))
}

func TestListVotersFilters(t *testing.T) {
	svc, _ := newTestVoterService(
		models.Voter{Id: "v1", Name: "Ravi Kumar", EpicNo: "AAA1", HouseNo: "12", Status: models.StatusActive},
		models.Voter{Id: "v2", Name: "Sita", EpicNo: "BBB2", HouseNo: "7", Status: models.StatusExpired},
		models.Voter{Id: "v3", Name: "Mohan", EpicNo: "CCC3", HouseNo: "12", Status: ""},
	)

	all, err := svc.ListVoters("All", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.ListVoters("active", "")
	require.NoError(t, err)
	assert.Len(t, active, 2, "an unset status counts as active")

	byEpic, err := svc.ListVoters("", "bbb")
	require.NoError(t, err)
	require.Len(t, byEpic, 1)
	assert.Equal(t, "v2", byEpic[0].Id)

	byHouse, err := svc.ListVoters("Active", "12")
	require.NoError(t, err)
	assert.Len(t, byHouse, 2)

	_, err = svc.ListVoters("Unknown", "")
	assert.True(t, errors2.HasCode(err, errors2.INVALID_STATUS))
}

func TestStatusCounts(t *testing.T) {
	svc, _ := newTestVoterService(
		models.Voter{Id: "v1", Status: models.StatusActive},
		models.Voter{Id: "v2", Status: models.StatusDuplicate},
		models.Voter{Id: "v3"},
	)

	want := map[string]int{"All": 3, "Active": 2, "Expired": 0, "Shifted": 0, "Duplicate": 1}
	if diff := cmp.Diff(want, svc.StatusCounts()); diff != "" {
		t.Errorf("unexpected counts (-want +got):\n%s", diff)
	}
}

func TestGroupBySection(t *testing.T) {
	voters := []models.Voter{
		{Id: "a", Name: "Zara", HouseNo: "10", Section: "Ward A", PartSerialNo: models.IntPtr(3)},
		{Id: "b", Name: "Anil", HouseNo: "10", Section: "Ward A", PartSerialNo: models.IntPtr(1)},
		{Id: "c", Name: "Bala", HouseNo: "2", Section: "Ward A"},
		{Id: "d", Name: "Chand", HouseNo: "", SectionNumber: models.IntPtr(2)},
		{Id: "e", Name: "Deepa", HouseNo: "4"},
		{Id: "f", Name: "Esha", HouseNo: "4", SectionNumber: models.IntPtr(0)},
	}

	groups := GroupBySection(voters)

	var sections []string
	for _, group := range groups {
		sections = append(sections, group.Section)
	}
	assert.Equal(t, []string{"Section 2", "Uncategorized", "Ward A"}, sections)

	assert.Equal(t, "Unassigned House", groups[0].Houses[0].HouseNo)
	assert.Equal(t, 2, groups[1].VoterCount)
	assert.Equal(t, 1, groups[1].HouseCount)

	wardA := groups[2]
	assert.Equal(t, 2, wardA.HouseCount)
	assert.Equal(t, 3, wardA.VoterCount)
	assert.Equal(t, "2", wardA.Houses[0].HouseNo)
	require.Len(t, wardA.Houses[1].Voters, 2)
	assert.Equal(t, "b", wardA.Houses[1].Voters[0].Id)
	assert.Equal(t, "a", wardA.Houses[1].Voters[1].Id)
}
