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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wso2/blo-register-service/internal/electoral/model"
	"github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type VoterServiceInterface interface {
	ListVoters(status, search string) ([]models.Voter, error)
	GetVoter(voterId string) (models.Voter, error)
	AddVoter(ctx context.Context, request model.VoterRequest) (models.Voter, error)
	UpdateVoter(ctx context.Context, voterId string, request model.VoterRequest) (models.Voter, error)
	StatusCounts() map[string]int
	GroupVoters(status, search string) ([]model.SectionGroup, error)
}

type VoterService struct {
	repository store.VoterRepository
	clock      utils.Clock
	newId      utils.IdGenerator
}

func NewVoterService(repository store.VoterRepository, clock utils.Clock) *VoterService {

	return &VoterService{
		repository: repository,
		clock:      clock,
		newId:      utils.NewId,
	}
}

// ListVoters filters the roll by status ("" or "All" keeps everything) and by a case-insensitive
// match on name, EPIC number or house number.
func (vs *VoterService) ListVoters(status, search string) ([]models.Voter, error) {

	var wanted models.Status
	if status != "" && status != constants.AllStatusesCountKey {
		parsed, ok := models.ParseStatus(status)
		if !ok {
			return nil, errors2.NewBadRequestError(errors2.INVALID_STATUS, errors2.INVALID_STATUS.Description)
		}
		wanted = parsed
	}

	term := strings.ToLower(strings.TrimSpace(search))
	voters := vs.repository.List()
	filtered := make([]models.Voter, 0, len(voters))
	for _, voter := range voters {
		if wanted != "" && voter.Status.OrActive() != wanted {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(voter.Name), term) &&
			!strings.Contains(strings.ToLower(voter.EpicNo), term) &&
			!strings.Contains(strings.ToLower(voter.HouseNo), term) {
			continue
		}
		filtered = append(filtered, voter)
	}
	return filtered, nil
}

func (vs *VoterService) GetVoter(voterId string) (models.Voter, error) {

	voter, found := vs.repository.Get(voterId)
	if !found {
		return models.Voter{}, VoterNotFound(voterId)
	}
	return voter, nil
}

func (vs *VoterService) AddVoter(ctx context.Context, request model.VoterRequest) (models.Voter, error) {

	if err := validateVoter(request); err != nil {
		return models.Voter{}, err
	}
	voter := vs.buildVoter(vs.newId(constants.VoterIdPrefix), request)
	vs.repository.Add(voter)

	utils.Audit(ctx, voter.Id, log.TargetTypeVoter, log.ActionAddVoter, map[string]interface{}{
		"epicNo":  voter.EpicNo,
		"houseNo": voter.HouseNo,
	})
	return voter, nil
}

// UpdateVoter replaces the editable fields of a voter. The member link is kept.
func (vs *VoterService) UpdateVoter(ctx context.Context, voterId string, request model.VoterRequest) (models.Voter, error) {

	existing, found := vs.repository.Get(voterId)
	if !found {
		return models.Voter{}, VoterNotFound(voterId)
	}
	if err := validateVoter(request); err != nil {
		return models.Voter{}, err
	}
	if request.Status == "" {
		request.Status = existing.Status
	}
	voter := vs.buildVoter(voterId, request)
	voter.LinkedMemberId = existing.LinkedMemberId
	vs.repository.Update(voter)

	utils.Audit(ctx, voterId, log.TargetTypeVoter, log.ActionUpdateVoter, map[string]interface{}{
		"epicNo": voter.EpicNo,
	})
	return voter, nil
}

// StatusCounts counts voters per status plus an "All" total.
func (vs *VoterService) StatusCounts() map[string]int {

	counts := map[string]int{constants.AllStatusesCountKey: 0}
	for _, status := range models.AllStatuses {
		counts[string(status)] = 0
	}
	for _, voter := range vs.repository.List() {
		counts[constants.AllStatusesCountKey]++
		counts[string(voter.Status.OrActive())]++
	}
	return counts
}

// GroupVoters filters the roll like ListVoters and groups the result by section and house.
func (vs *VoterService) GroupVoters(status, search string) ([]model.SectionGroup, error) {

	voters, err := vs.ListVoters(status, search)
	if err != nil {
		return nil, err
	}
	return GroupBySection(voters), nil
}

// GroupBySection arranges voters by section, then by house number. Sections and houses come in
// natural order; voters within a house by part serial number, then name.
func GroupBySection(voters []models.Voter) []model.SectionGroup {

	sections := map[string]map[string][]models.Voter{}
	for _, voter := range voters {
		sectionKey := SectionKey(voter)
		houseKey := voter.HouseNo
		if houseKey == "" {
			houseKey = constants.UnassignedHouse
		}
		if sections[sectionKey] == nil {
			sections[sectionKey] = map[string][]models.Voter{}
		}
		sections[sectionKey][houseKey] = append(sections[sectionKey][houseKey], voter)
	}

	groups := make([]model.SectionGroup, 0, len(sections))
	for _, sectionKey := range naturalKeys(sections) {
		houses := sections[sectionKey]
		group := model.SectionGroup{Section: sectionKey, HouseCount: len(houses)}
		for _, houseKey := range naturalKeys(houses) {
			houseVoters := houses[houseKey]
			sort.SliceStable(houseVoters, func(i, j int) bool {
				a, b := serialOf(houseVoters[i]), serialOf(houseVoters[j])
				if a != b {
					return a < b
				}
				return strings.ToLower(houseVoters[i].Name) < strings.ToLower(houseVoters[j].Name)
			})
			group.VoterCount += len(houseVoters)
			group.Houses = append(group.Houses, model.HouseGroup{HouseNo: houseKey, Voters: houseVoters})
		}
		groups = append(groups, group)
	}
	return groups
}

// SectionKey names the roll section of a voter: the section name, else "Section <n>", else
// Uncategorized.
func SectionKey(voter models.Voter) string {

	if voter.Section != "" {
		return voter.Section
	}
	if voter.SectionNumber != nil && *voter.SectionNumber != 0 {
		return constants.SectionGroupPrefix + strconv.Itoa(*voter.SectionNumber)
	}
	return constants.UncategorizedSection
}

func VoterNotFound(voterId string) error {

	return errors2.NewNotFoundError(errors2.VOTER_NOT_FOUND, fmt.Sprintf("Voter %s does not exist.", voterId))
}

func validateVoter(request model.VoterRequest) error {

	if strings.TrimSpace(request.Name) == "" {
		return errors2.NewBadRequestError(errors2.INVALID_VOTER, "Voter name is required.")
	}
	if request.Status != "" && !request.Status.IsValid() {
		return errors2.NewBadRequestError(errors2.INVALID_STATUS, errors2.INVALID_STATUS.Description)
	}
	if request.Dob != "" {
		if _, ok := utils.ParseDate(request.Dob); !ok {
			return errors2.NewBadRequestError(errors2.INVALID_VOTER,
				fmt.Sprintf("Date of birth %s is not a valid date.", request.Dob))
		}
	}
	if request.Age != nil && *request.Age < 0 {
		return errors2.NewBadRequestError(errors2.INVALID_VOTER, "Age cannot be negative.")
	}
	return nil
}

func (vs *VoterService) buildVoter(voterId string, request model.VoterRequest) models.Voter {

	voter := models.Voter{
		Id:            voterId,
		EpicNo:        strings.TrimSpace(request.EpicNo),
		Name:          strings.TrimSpace(request.Name),
		Gender:        models.ParseGender(string(request.Gender)),
		HouseNo:       strings.TrimSpace(request.HouseNo),
		Section:       request.Section,
		SectionNumber: request.SectionNumber,
		Status:        request.Status.OrActive(),
		Dob:           request.Dob,
		RelationType:  request.RelationType,
		RelationName:  request.RelationName,
		PartNo:        request.PartNo,
		PartSerialNo:  request.PartSerialNo,
	}
	if request.Age != nil {
		voter.Age = *request.Age
	} else if age, ok := utils.AgeOn(request.Dob, vs.clock()); ok {
		voter.Age = age
	}
	return voter
}

func serialOf(voter models.Voter) int {

	if voter.PartSerialNo == nil {
		return 0
	}
	return *voter.PartSerialNo
}

func naturalKeys[V any](m map[string]V) []string {

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return utils.NaturalLess(keys[i], keys[j])
	})
	return keys
}
