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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/blo-register-service/internal/models"
)

var today = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestSuggestLinksScoresHouseNameAndAge(t *testing.T) {
	voter := models.Voter{Id: "v1", Name: "Ravi Kumar", Age: 44, HouseNo: "12", Gender: models.GenderMale}
	members := []models.MemberRef{
		{Member: models.Member{Id: "exact", Name: "ravikumar", Dob: "1980-01-01"}, HouseNo: " 12 "},
		{Member: models.Member{Id: "house", Name: "Sita", Dob: "1950-01-01"}, HouseNo: "12"},
		{Member: models.Member{Id: "name", Name: "Ravi", Dob: "2000-01-01"}, HouseNo: "99"},
		{Member: models.Member{Id: "none", Name: "Mohan", Dob: "1900-01-01"}, HouseNo: "3"},
	}

	suggestions := SuggestLinks(voter, members, today)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "exact", suggestions[0].Member.Id)
	assert.Equal(t, 10, suggestions[0].Score)
	assert.Equal(t, "house", suggestions[1].Member.Id)
	assert.Equal(t, 5, suggestions[1].Score)
	assert.Equal(t, "name", suggestions[2].Member.Id)
	assert.Equal(t, 3, suggestions[2].Score)
}

func TestSuggestLinksKeepsTopFiveInInputOrderOnTies(t *testing.T) {
	voter := models.Voter{Name: "Nobody", HouseNo: "1"}
	var members []models.MemberRef
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		members = append(members, models.MemberRef{Member: models.Member{Id: id, Name: "X"}, HouseNo: "1"})
	}

	suggestions := SuggestLinks(voter, members, today)

	require.Len(t, suggestions, 5)
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, id, suggestions[i].Member.Id)
		assert.Equal(t, 5, suggestions[i].Score)
	}
}

func TestSuggestLinksIgnoresUnknownDob(t *testing.T) {
	voter := models.Voter{Name: "A", Age: 0, HouseNo: "5"}
	members := []models.MemberRef{{Member: models.Member{Id: "m", Name: "B"}, HouseNo: "6"}}
	assert.Empty(t, SuggestLinks(voter, members, today))
}

func TestAutoLink(t *testing.T) {
	households := []models.Household{
		{Id: "h1", HouseNo: "12", Members: []models.Member{
			{Id: "m1", Name: "Ravi Kumar", Gender: models.GenderMale},
			{Id: "m2", Name: "Sita", Gender: models.GenderFemale},
		}},
		{Id: "h2", HouseNo: "12", Members: []models.Member{
			{Id: "m3", Name: "Sita", Gender: models.GenderFemale},
		}},
	}
	voters := []models.Voter{
		{Id: "v1", Name: "RAVI  KUMAR", Gender: "male", HouseNo: "12"},
		{Id: "v2", Name: "Ravi Kumar", Gender: models.GenderMale, HouseNo: "12"},
		{Id: "v3", Name: "Sita", Gender: models.GenderMale, HouseNo: "12"},
		{Id: "v4", Name: "Sita", Gender: models.GenderFemale, HouseNo: "12", LinkedMemberId: "other"},
		{Id: "v5", Name: "Sita", Gender: models.GenderFemale, HouseNo: "12A"},
	}

	updated, linked := AutoLink(voters, households)

	assert.Equal(t, 1, linked)
	assert.Equal(t, "m1", updated[0].LinkedMemberId)
	assert.Empty(t, updated[1].LinkedMemberId, "a member is claimed at most once per run")
	assert.Empty(t, updated[2].LinkedMemberId, "gender must match")
	assert.Equal(t, "other", updated[3].LinkedMemberId, "existing links are kept")
	assert.Empty(t, updated[4].LinkedMemberId)
	assert.Empty(t, voters[0].LinkedMemberId, "input is not modified")
}

func TestAutoLinkIsIdempotent(t *testing.T) {
	households := []models.Household{{Id: "h1", HouseNo: "1", Members: []models.Member{
		{Id: "m1", Name: "Anil", Gender: models.GenderMale},
	}}}
	voters := []models.Voter{{Id: "v1", Name: "Anil", Gender: models.GenderMale, HouseNo: "1"}}

	first, linked := AutoLink(voters, households)
	require.Equal(t, 1, linked)

	second, linked := AutoLink(first, households)
	assert.Equal(t, 0, linked)
	assert.Equal(t, first, second)
}
