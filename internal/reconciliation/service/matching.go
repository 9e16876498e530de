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
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/reconciliation/model"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

// SuggestLinks scores every member against the voter and returns the best candidates. A shared
// house number is worth 5, one compacted name containing the other 3, and an age within two
// years of the voter's 2. Only positive scores are kept, highest first, at most five.
func SuggestLinks(voter models.Voter, members []models.MemberRef, today time.Time) []model.LinkSuggestion {

	voterName := compactName(voter.Name)
	var suggestions []model.LinkSuggestion
	for _, member := range members {
		score := 0
		if models.SameHouseNo(member.HouseNo, voter.HouseNo) {
			score += constants.HouseNoMatchScore
		}
		memberName := compactName(member.Name)
		if memberName != "" && voterName != "" &&
			(strings.Contains(memberName, voterName) || strings.Contains(voterName, memberName)) {
			score += constants.NameMatchScore
		}
		if age, ok := utils.AgeOn(member.Dob, today); ok && abs(age-voter.Age) <= constants.AgeMatchTolerance {
			score += constants.AgeMatchScore
		}
		if score > 0 {
			suggestions = append(suggestions, model.LinkSuggestion{Member: member, Score: score})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > constants.MaxLinkSuggestions {
		suggestions = suggestions[:constants.MaxLinkSuggestions]
	}
	return suggestions
}

// AutoLink links every unlinked voter to the first member of the household sharing its house
// number whose compacted name and gender both match exactly. Linked voters are left alone and a
// member claimed earlier in the same run is skipped. The input slice is not modified.
func AutoLink(voters []models.Voter, households []models.Household) ([]models.Voter, int) {

	updated := append([]models.Voter(nil), voters...)
	claimed := map[string]bool{}
	linked := 0
	for i, voter := range updated {
		if voter.IsLinked() {
			continue
		}
		household, found := findHousehold(households, voter.HouseNo)
		if !found {
			continue
		}
		voterName := compactName(voter.Name)
		for _, member := range household.Members {
			if claimed[member.Id] || compactName(member.Name) != voterName || !models.SameGender(member.Gender, voter.Gender) {
				continue
			}
			updated[i].LinkedMemberId = member.Id
			claimed[member.Id] = true
			linked++
			break
		}
	}
	return updated, linked
}

func findHousehold(households []models.Household, houseNo string) (models.Household, bool) {

	for _, household := range households {
		if models.SameHouseNo(household.HouseNo, houseNo) {
			return household, true
		}
	}
	return models.Household{}, false
}

// compactName lowercases and strips all whitespace.
func compactName(name string) string {

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func abs(v int) int {

	if v < 0 {
		return -v
	}
	return v
}
