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
	"math"
	"strconv"
	"time"

	"github.com/wso2/blo-register-service/internal/aggregation/model"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type cohortBand struct {
	label    string
	min, max int
}

const openEnded = -1

var cohortBands = []cohortBand{
	{"0-17", 0, 17},
	{"18-19", 18, 19},
	{"20-29", 20, 29},
	{"30-39", 30, 39},
	{"40-49", 40, 49},
	{"50-59", 50, 59},
	{"60-69", 60, 69},
	{"70-79", 70, 79},
	{"80+", 80, openEnded},
}

// bandIndex places an age in a cohort. Ages below zero fall in the first band.
func bandIndex(age int) int {
	for i, band := range cohortBands {
		if band.max == openEnded || age <= band.max {
			return i
		}
	}
	return len(cohortBands) - 1
}

// memberBand uses the first band for members whose date of birth is unknown.
func memberBand(member models.Member, today time.Time) int {
	age, ok := utils.AgeOn(member.Dob, today)
	if !ok {
		return 0
	}
	return bandIndex(age)
}

// AgeCohorts builds the age cohort statement over members and electors.
func AgeCohorts(households []models.Household, voters []models.Voter, today time.Time) []model.AgeCohort {

	population := make([]int, len(cohortBands))
	electors := make([]int, len(cohortBands))
	totalPopulation := 0
	for _, household := range households {
		for _, member := range household.Members {
			population[memberBand(member, today)]++
			totalPopulation++
		}
	}
	for _, voter := range voters {
		electors[bandIndex(voter.Age)]++
	}

	cohorts := make([]model.AgeCohort, 0, len(cohortBands))
	for i, band := range cohortBands {
		cohorts = append(cohorts, model.AgeCohort{
			Label:             band.label,
			Min:               band.min,
			Max:               band.max,
			Population:        population[i],
			PopulationPercent: Percent(population[i], totalPopulation),
			Electors:          electors[i],
			ElectorPercent:    Percent(electors[i], len(voters)),
			RegistrationRate:  Percent(electors[i], population[i]),
		})
	}
	return cohorts
}

// Percent renders part/whole as a percentage with two decimals, "0.00" when whole is zero.
func Percent(part, whole int) string {

	if whole == 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(part)/float64(whole)*100, 'f', 2, 64)
}

// PerThousand returns round(part/whole*1000), or 0 when whole is zero.
func PerThousand(part, whole int) int {

	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 1000))
}

// EPRatio is electors per thousand population.
func EPRatio(electors, population int) int {

	return PerThousand(electors, population)
}

// GenderRatio is female electors per thousand male electors.
func GenderRatio(femaleElectors, maleElectors int) int {

	return PerThousand(femaleElectors, maleElectors)
}

// ProspectiveVoters lists members who are exactly 17 today.
func ProspectiveVoters(households []models.Household, today time.Time) []model.ProspectiveVoter {

	prospective := []model.ProspectiveVoter{}
	for _, household := range households {
		hof, _ := household.HeadOfFamily()
		for _, member := range household.Members {
			age, ok := utils.AgeOn(member.Dob, today)
			if !ok || age != constants.ProspectiveAge {
				continue
			}
			precise, _ := utils.PreciseAgeOn(member.Dob, today)
			prospective = append(prospective, model.ProspectiveVoter{
				MemberRef:    refOf(household, member),
				HofName:      hof.Name,
				ContactPhone: contactPhone(member, hof),
				PreciseAge:   precise,
			})
		}
	}
	return prospective
}

// UnregisteredAdults lists members of voting age whose id no voter links to.
func UnregisteredAdults(households []models.Household, voters []models.Voter, today time.Time) []model.UnregisteredAdult {

	linked := LinkedMemberIds(voters)
	unregistered := []model.UnregisteredAdult{}
	for _, household := range households {
		hof, _ := household.HeadOfFamily()
		for _, member := range household.Members {
			age, ok := utils.AgeOn(member.Dob, today)
			if !ok || age < constants.MinimumVotingAge || linked[member.Id] {
				continue
			}
			unregistered = append(unregistered, model.UnregisteredAdult{
				MemberRef:    refOf(household, member),
				Age:          age,
				HofName:      hof.Name,
				ContactPhone: contactPhone(member, hof),
			})
		}
	}
	return unregistered
}

// MarkedVoters lists voters whose status is anything but Active.
func MarkedVoters(voters []models.Voter) []models.Voter {

	marked := []models.Voter{}
	for _, voter := range voters {
		if voter.Status.OrActive() != models.StatusActive {
			marked = append(marked, voter)
		}
	}
	return marked
}

// ElectorStatusCounts counts voters per status. Every status is present.
func ElectorStatusCounts(voters []models.Voter) map[string]int {

	counts := make(map[string]int, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		counts[string(status)] = 0
	}
	for _, voter := range voters {
		counts[string(voter.Status.OrActive())]++
	}
	return counts
}

// LinkedMemberIds is the set of member ids referenced by voters, dangling or not.
func LinkedMemberIds(voters []models.Voter) map[string]bool {

	linked := make(map[string]bool, len(voters))
	for _, voter := range voters {
		if voter.IsLinked() {
			linked[voter.LinkedMemberId] = true
		}
	}
	return linked
}

// Dashboard computes the census and election statistics.
func Dashboard(households []models.Household, voters []models.Voter, today time.Time) model.DashboardStats {

	census := model.CensusStats{TotalHouseholds: len(households)}
	for _, household := range households {
		for _, member := range household.Members {
			census.TotalPopulation++
			switch {
			case models.SameGender(member.Gender, models.GenderMale):
				census.MalePopulation++
			case models.SameGender(member.Gender, models.GenderFemale):
				census.FemalePopulation++
			}
		}
	}
	census.ProspectiveVoters = len(ProspectiveVoters(households, today))
	census.UnregisteredAdults = len(UnregisteredAdults(households, voters, today))

	election := model.ElectionStats{
		TotalElectors: len(voters),
		MarkedVoters:  len(MarkedVoters(voters)),
		StatusCounts:  ElectorStatusCounts(voters),
	}
	for _, voter := range voters {
		switch {
		case models.SameGender(voter.Gender, models.GenderMale):
			election.MaleElectors++
		case models.SameGender(voter.Gender, models.GenderFemale):
			election.FemaleElectors++
		}
	}
	election.EPRatio = EPRatio(election.TotalElectors, census.TotalPopulation)
	election.GenderRatio = GenderRatio(election.FemaleElectors, election.MaleElectors)

	return model.DashboardStats{Census: census, Election: election}
}

func refOf(household models.Household, member models.Member) models.MemberRef {

	return models.MemberRef{Member: member, HouseholdId: household.Id, HouseNo: household.HouseNo}
}

// contactPhone prefers the member's own phone, then the head of family's.
func contactPhone(member, hof models.Member) string {

	if member.Phone != "" {
		return member.Phone
	}
	return hof.Phone
}
