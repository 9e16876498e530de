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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderMale, ParseGender(" m"))
	assert.Equal(t, GenderMale, ParseGender("Male"))
	assert.Equal(t, GenderFemale, ParseGender("female"))
	assert.Equal(t, GenderOther, ParseGender("T"))
	assert.Equal(t, GenderOther, ParseGender(""))
	assert.True(t, SameGender("male", GenderMale))
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("shifted")
	assert.True(t, ok)
	assert.Equal(t, StatusShifted, status)

	_, ok = ParseStatus("All")
	assert.False(t, ok)
	assert.Equal(t, StatusActive, Status("").OrActive())
}

func TestSameHouseNo(t *testing.T) {
	assert.True(t, SameHouseNo(" 12a ", "12A"))
	assert.False(t, SameHouseNo("", " "))
	assert.False(t, SameHouseNo("12", "12A"))
}

func TestNormalizeHeadOfFamily(t *testing.T) {
	household := Household{Members: []Member{
		{Id: "m1", Name: "Anil"},
		{Id: "m2", Name: "Bina", IsHof: true, Phone: "9876543210"},
		{Id: "m3", Name: "Chitra", IsHof: true, Aadhar: "123412341234", Phone: "9000000000"},
	}}

	household.NormalizeHeadOfFamily()

	hof, ok := household.HeadOfFamily()
	assert.True(t, ok)
	assert.Equal(t, "m2", hof.Id)
	assert.Equal(t, "9876543210", hof.Phone)
	assert.False(t, household.Members[2].IsHof)
	assert.Empty(t, household.Members[2].Aadhar)
	assert.Empty(t, household.Members[2].Phone)
}

func TestNormalizeHeadOfFamilyPromotesFirstMember(t *testing.T) {
	household := Household{Members: []Member{{Id: "m1"}, {Id: "m2"}}}
	household.NormalizeHeadOfFamily()
	assert.True(t, household.Members[0].IsHof)
	assert.False(t, household.Members[1].IsHof)
}

func TestCloneDoesNotShareMembers(t *testing.T) {
	original := Household{Id: "h1", Members: []Member{{Id: "m1", Name: "Anil"}}}
	clone := original.Clone()
	clone.Members[0].Name = "Changed"
	assert.Equal(t, "Anil", original.Members[0].Name)
}

func TestFlattenMembers(t *testing.T) {
	refs := FlattenMembers([]Household{
		{Id: "h1", HouseNo: "1", Members: []Member{{Id: "a"}, {Id: "b"}}},
		{Id: "h2", HouseNo: "2", Members: []Member{{Id: "c"}}},
	})
	if assert.Len(t, refs, 3) {
		assert.Equal(t, "h2", refs[2].HouseholdId)
		assert.Equal(t, "2", refs[2].HouseNo)
		assert.Equal(t, "c", refs[2].Id)
	}
}
