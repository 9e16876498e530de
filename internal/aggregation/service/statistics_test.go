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
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	settingsStore "github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/storage"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

var today = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func sampleHouseholds() []models.Household {
	return []models.Household{
		{Id: "h1", HouseNo: "1", Members: []models.Member{
			{Id: "m1", Name: "Ravi", Dob: "1980-01-01", Gender: models.GenderMale, IsHof: true, Phone: "9876543210"},
			{Id: "m2", Name: "Sita", Dob: "1984-02-02", Gender: models.GenderFemale},
			{Id: "m3", Name: "Arjun", Dob: "2007-01-20", Gender: models.GenderMale},
			{Id: "m4", Name: "Baby", Gender: models.GenderFemale},
		}},
		{Id: "h2", HouseNo: "2", Members: []models.Member{
			{Id: "m5", Name: "Meena", Dob: "1940-03-03", Gender: models.GenderFemale, IsHof: true},
		}},
	}
}

func sampleVoters() []models.Voter {
	return []models.Voter{
		{Id: "v1", Name: "Ravi", Age: 44, Gender: models.GenderMale, LinkedMemberId: "m1", Status: models.StatusActive},
		{Id: "v2", Name: "Old", Age: 90, Gender: models.GenderFemale, Status: models.StatusExpired},
		{Id: "v3", Name: "Gone", Age: 30, Gender: models.GenderOther, LinkedMemberId: "deleted", Status: models.StatusShifted},
	}
}

func TestAgeCohortsSumToTotals(t *testing.T) {
	households := sampleHouseholds()
	voters := sampleVoters()

	cohorts := AgeCohorts(households, voters, today)

	require.Len(t, cohorts, 9)
	population, electors := 0, 0
	for _, cohort := range cohorts {
		population += cohort.Population
		electors += cohort.Electors
	}
	assert.Equal(t, 5, population)
	assert.Equal(t, len(voters), electors)

	// Arjun is 17 and Baby has no date of birth.
	assert.Equal(t, "0-17", cohorts[0].Label)
	assert.Equal(t, 2, cohorts[0].Population)
	assert.Equal(t, "40.00", cohorts[0].PopulationPercent)
	assert.Equal(t, "0.00", cohorts[0].RegistrationRate)

	top := cohorts[len(cohorts)-1]
	assert.Equal(t, "80+", top.Label)
	assert.Equal(t, -1, top.Max)
	assert.Equal(t, 1, top.Population)
	assert.Equal(t, 1, top.Electors)
	assert.Equal(t, "33.33", top.ElectorPercent)
	assert.Equal(t, "100.00", top.RegistrationRate)
}

func TestRatiosWithZeroDenominators(t *testing.T) {
	assert.Equal(t, "0.00", Percent(3, 0))
	assert.Equal(t, 0, EPRatio(10, 0))
	assert.Equal(t, 0, GenderRatio(5, 0))
	assert.Equal(t, 667, PerThousand(2, 3))

	stats := Dashboard(nil, nil, today)
	assert.Equal(t, 0, stats.Election.EPRatio)
	assert.Equal(t, 0, stats.Election.GenderRatio)
	assert.Equal(t, 0, stats.Election.StatusCounts["Active"])
}

func TestProspectiveVoterTurnsEighteenTomorrow(t *testing.T) {
	dob := utils.FormatDate(today.AddDate(-18, 0, 1))
	households := []models.Household{{Id: "h1", HouseNo: "9", Members: []models.Member{
		{Id: "hof", Name: "Parent", Dob: "1970-01-01", IsHof: true, Phone: "9000000000"},
		{Id: "kid", Name: "Kid", Dob: dob},
	}}}

	prospective := ProspectiveVoters(households, today)
	require.Len(t, prospective, 1)
	assert.Equal(t, "kid", prospective[0].Id)
	assert.Equal(t, "Parent", prospective[0].HofName)
	assert.Equal(t, "9000000000", prospective[0].ContactPhone)
	assert.Equal(t, 17, prospective[0].PreciseAge.Years)
	assert.Equal(t, 11, prospective[0].PreciseAge.Months)

	tomorrow := today.AddDate(0, 0, 1)
	assert.Empty(t, ProspectiveVoters(households, tomorrow))
	unregistered := UnregisteredAdults(households, nil, tomorrow)
	require.Len(t, unregistered, 2)
	assert.Equal(t, 18, unregistered[1].Age)
}

func TestUnregisteredAdultsSkipsLinkedMembers(t *testing.T) {
	unregistered := UnregisteredAdults(sampleHouseholds(), sampleVoters(), today)

	var ids []string
	for _, adult := range unregistered {
		ids = append(ids, adult.Id)
	}
	assert.Equal(t, []string{"m2", "m5"}, ids)
	assert.Equal(t, "9876543210", unregistered[0].ContactPhone)
	assert.Equal(t, "Ravi", unregistered[0].HofName)
}

func TestDashboard(t *testing.T) {
	stats := Dashboard(sampleHouseholds(), sampleVoters(), today)

	assert.Equal(t, 2, stats.Census.TotalHouseholds)
	assert.Equal(t, 5, stats.Census.TotalPopulation)
	assert.Equal(t, 2, stats.Census.MalePopulation)
	assert.Equal(t, 3, stats.Census.FemalePopulation)
	assert.Equal(t, 1, stats.Census.ProspectiveVoters)
	assert.Equal(t, 2, stats.Census.UnregisteredAdults)

	assert.Equal(t, 3, stats.Election.TotalElectors)
	assert.Equal(t, 1, stats.Election.MaleElectors)
	assert.Equal(t, 1, stats.Election.FemaleElectors)
	assert.Equal(t, 2, stats.Election.MarkedVoters)
	assert.Equal(t, 600, stats.Election.EPRatio)
	assert.Equal(t, 1000, stats.Election.GenderRatio)
	assert.Equal(t, map[string]int{"Active": 1, "Expired": 1, "Shifted": 1, "Duplicate": 0}, stats.Election.StatusCounts)
}

func TestRegisterUsesOneSnapshot(t *testing.T) {
	kv := storage.NewMemoryStore()
	households := censusStore.NewHouseholdStore(kv)
	households.ReplaceAll(sampleHouseholds())
	voters := electoralStore.NewVoterStore(kv)
	voters.ReplaceAll(sampleVoters())
	settings := settingsStore.NewSettingsStore(kv)

	svc := NewAggregationService(households, voters, settings, func() time.Time { return today })
	register := svc.Register()

	assert.Equal(t, today, register.GeneratedOn)
	assert.Equal(t, models.DefaultSettings(), register.Settings)
	assert.Equal(t, svc.DashboardStats(), register.Stats)
	assert.Len(t, register.MarkedVoters, 2)
	assert.Len(t, register.ProspectiveVoters, 1)
	assert.Equal(t, svc.AgeCohorts(), register.AgeCohorts)
}
