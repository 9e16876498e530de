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
	"strings"
	"unicode"

	"github.com/wso2/blo-register-service/internal/census/model"
	"github.com/wso2/blo-register-service/internal/census/store"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type HouseholdServiceInterface interface {
	ListHouseholds(search string) []models.Household
	GetHousehold(householdId string) (models.Household, error)
	AddHousehold(ctx context.Context, request model.HouseholdRequest) (models.Household, error)
	UpdateHousehold(ctx context.Context, householdId string, request model.HouseholdUpdateRequest) (models.Household, error)
	DeleteHousehold(ctx context.Context, householdId string) error
	AddMember(ctx context.Context, householdId string, request model.MemberRequest) (models.Member, error)
	UpdateMember(ctx context.Context, householdId, memberId string, request model.MemberRequest) (models.Member, error)
	DeleteMember(ctx context.Context, householdId, memberId string) error
}

// HouseholdService validates census edits before they reach the repository.
type HouseholdService struct {
	repository store.HouseholdRepository
	clock      utils.Clock
	newId      utils.IdGenerator
}

func NewHouseholdService(repository store.HouseholdRepository, clock utils.Clock) *HouseholdService {

	return &HouseholdService{
		repository: repository,
		clock:      clock,
		newId:      utils.NewId,
	}
}

// ListHouseholds returns households in natural house number order, optionally filtered by a
// case-insensitive match on the house number or the head of family's name.
func (hs *HouseholdService) ListHouseholds(search string) []models.Household {

	households := hs.repository.List()
	sort.SliceStable(households, func(i, j int) bool {
		return utils.NaturalLess(households[i].HouseNo, households[j].HouseNo)
	})

	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return households
	}
	filtered := make([]models.Household, 0, len(households))
	for _, household := range households {
		if strings.Contains(strings.ToLower(household.HouseNo), term) {
			filtered = append(filtered, household)
			continue
		}
		if hof, ok := household.HeadOfFamily(); ok && strings.Contains(strings.ToLower(hof.Name), term) {
			filtered = append(filtered, household)
		}
	}
	return filtered
}

func (hs *HouseholdService) GetHousehold(householdId string) (models.Household, error) {

	household, found := hs.repository.Get(householdId)
	if !found {
		return models.Household{}, householdNotFound(householdId)
	}
	return household, nil
}

// AddHousehold registers a household. The head of family is stored first and flagged; other
// members are stored unflagged without contact fields.
func (hs *HouseholdService) AddHousehold(ctx context.Context, request model.HouseholdRequest) (models.Household, error) {

	houseNo := strings.TrimSpace(request.HouseNo)
	hofRequest := request.HeadOfFamily
	if houseNo == "" || strings.TrimSpace(hofRequest.Name) == "" || hofRequest.Dob == "" {
		return models.Household{}, errors2.NewBadRequestError(errors2.INVALID_HOUSEHOLD,
			"House No, HOF Name and HOF DOB are required.")
	}
	if _, exists := hs.repository.FindByHouseNo(houseNo); exists {
		return models.Household{}, errors2.NewConflictError(errors2.DUPLICATE_HOUSE_NO,
			fmt.Sprintf("House number %s is already registered.", houseNo))
	}
	if err := hs.validateHeadOfFamily(hofRequest); err != nil {
		return models.Household{}, err
	}
	for _, memberRequest := range request.Members {
		if err := validateMember(memberRequest); err != nil {
			return models.Household{}, err
		}
	}

	household := models.Household{
		Id:      hs.newId(constants.HouseholdIdPrefix),
		HouseNo: houseNo,
		Address: strings.TrimSpace(request.Address),
		Members: make([]models.Member, 0, len(request.Members)+1),
	}
	household.Members = append(household.Members, hs.buildMember(hs.newId(constants.MemberIdPrefix), hofRequest, true))
	for _, memberRequest := range request.Members {
		household.Members = append(household.Members,
			hs.buildMember(hs.newId(constants.MemberIdPrefix), memberRequest, false))
	}
	hs.repository.Add(household)

	utils.Audit(ctx, household.Id, log.TargetTypeHousehold, log.ActionAddHousehold, map[string]interface{}{
		"houseNo": household.HouseNo,
		"members": len(household.Members),
	})
	return household, nil
}

func (hs *HouseholdService) UpdateHousehold(ctx context.Context, householdId string,
	request model.HouseholdUpdateRequest) (models.Household, error) {

	household, found := hs.repository.Get(householdId)
	if !found {
		return models.Household{}, householdNotFound(householdId)
	}
	houseNo := strings.TrimSpace(request.HouseNo)
	if houseNo == "" {
		return models.Household{}, errors2.NewBadRequestError(errors2.INVALID_HOUSEHOLD, "House No is required.")
	}
	if other, exists := hs.repository.FindByHouseNo(houseNo); exists && other.Id != householdId {
		return models.Household{}, errors2.NewConflictError(errors2.DUPLICATE_HOUSE_NO,
			fmt.Sprintf("House number %s is already registered.", houseNo))
	}

	household.HouseNo = houseNo
	household.Address = strings.TrimSpace(request.Address)
	hs.repository.Update(household)

	utils.Audit(ctx, householdId, log.TargetTypeHousehold, log.ActionUpdateHousehold, map[string]interface{}{
		"houseNo": household.HouseNo,
	})
	return household, nil
}

// DeleteHousehold removes the household with all of its members. Voter links to those members
// are left in place.
func (hs *HouseholdService) DeleteHousehold(ctx context.Context, householdId string) error {

	household, found := hs.repository.Get(householdId)
	if !found {
		return householdNotFound(householdId)
	}
	hs.repository.Delete(householdId)

	utils.Audit(ctx, householdId, log.TargetTypeHousehold, log.ActionDeleteHousehold, map[string]interface{}{
		"houseNo": household.HouseNo,
		"members": len(household.Members),
	})
	return nil
}

// AddMember appends a non head of family member to the household.
func (hs *HouseholdService) AddMember(ctx context.Context, householdId string,
	request model.MemberRequest) (models.Member, error) {

	household, found := hs.repository.Get(householdId)
	if !found {
		return models.Member{}, householdNotFound(householdId)
	}
	if err := validateMember(request); err != nil {
		return models.Member{}, err
	}

	// A household that somehow lost its head of family gets the new member as one.
	_, hasHof := household.HeadOfFamily()
	if !hasHof {
		if err := hs.validateHeadOfFamily(request); err != nil {
			return models.Member{}, err
		}
	}
	member := hs.buildMember(hs.newId(constants.MemberIdPrefix), request, !hasHof)
	hs.repository.AddMember(householdId, member)

	utils.Audit(ctx, member.Id, log.TargetTypeMember, log.ActionAddMember, map[string]interface{}{
		"householdId": householdId,
		"isHof":       member.IsHof,
	})
	return member, nil
}

// UpdateMember edits a member in place. The head of family flag never moves.
func (hs *HouseholdService) UpdateMember(ctx context.Context, householdId, memberId string,
	request model.MemberRequest) (models.Member, error) {

	household, found := hs.repository.Get(householdId)
	if !found {
		return models.Member{}, householdNotFound(householdId)
	}
	index := household.MemberIndex(memberId)
	if index < 0 {
		return models.Member{}, memberNotFound(memberId)
	}
	existing := household.Members[index]
	if err := validateMember(request); err != nil {
		return models.Member{}, err
	}
	if existing.IsHof {
		if err := hs.validateHeadOfFamily(request); err != nil {
			return models.Member{}, err
		}
	}
	if request.Status == "" {
		request.Status = existing.Status
	}

	member := hs.buildMember(existing.Id, request, existing.IsHof)
	hs.repository.UpdateMember(householdId, member)

	utils.Audit(ctx, member.Id, log.TargetTypeMember, log.ActionUpdateMember, map[string]interface{}{
		"householdId": householdId,
	})
	return member, nil
}

// DeleteMember removes a member other than the head of family.
func (hs *HouseholdService) DeleteMember(ctx context.Context, householdId, memberId string) error {

	household, found := hs.repository.Get(householdId)
	if !found {
		return householdNotFound(householdId)
	}
	index := household.MemberIndex(memberId)
	if index < 0 {
		return memberNotFound(memberId)
	}
	if household.Members[index].IsHof {
		return errors2.NewBadRequestError(errors2.HOF_DELETE_NOT_ALLOWED, errors2.HOF_DELETE_NOT_ALLOWED.Description)
	}
	hs.repository.DeleteMember(householdId, memberId)

	utils.Audit(ctx, memberId, log.TargetTypeMember, log.ActionDeleteMember, map[string]interface{}{
		"householdId": householdId,
	})
	return nil
}

func (hs *HouseholdService) validateHeadOfFamily(request model.MemberRequest) error {

	if strings.TrimSpace(request.Name) == "" || request.Dob == "" {
		return errors2.NewBadRequestError(errors2.INVALID_HOUSEHOLD, "HOF Name and HOF DOB are required.")
	}
	age, ok := utils.AgeOn(request.Dob, hs.clock())
	if !ok {
		return errors2.NewBadRequestError(errors2.INVALID_MEMBER,
			fmt.Sprintf("Date of birth %s is not a valid date.", request.Dob))
	}
	if age < constants.MinimumVotingAge {
		return errors2.NewBadRequestError(errors2.UNDERAGE_HOF, errors2.UNDERAGE_HOF.Description)
	}
	if !hasDigitLength(request.Aadhar, constants.AadharLength) || !hasDigitLength(request.Phone, constants.PhoneNumberLength) {
		return errors2.NewBadRequestError(errors2.INVALID_IDENTIFIER_LENGTH, errors2.INVALID_IDENTIFIER_LENGTH.Description)
	}
	return nil
}

func validateMember(request model.MemberRequest) error {

	if strings.TrimSpace(request.Name) == "" || request.Dob == "" {
		return errors2.NewBadRequestError(errors2.INVALID_MEMBER, "Member Name and DOB are required.")
	}
	if _, ok := utils.ParseDate(request.Dob); !ok {
		return errors2.NewBadRequestError(errors2.INVALID_MEMBER,
			fmt.Sprintf("Date of birth %s is not a valid date.", request.Dob))
	}
	if request.Status != "" && !request.Status.IsValid() {
		return errors2.NewBadRequestError(errors2.INVALID_STATUS, errors2.INVALID_STATUS.Description)
	}
	return nil
}

func (hs *HouseholdService) buildMember(memberId string, request model.MemberRequest, isHof bool) models.Member {

	member := models.Member{
		Id:     memberId,
		Name:   strings.TrimSpace(request.Name),
		Dob:    request.Dob,
		Gender: models.ParseGender(string(request.Gender)),
		IsHof:  isHof,
		Status: request.Status.OrActive(),
	}
	if isHof {
		member.Aadhar = request.Aadhar
		member.Phone = request.Phone
	}
	return member
}

// hasDigitLength accepts an empty value or exactly length digits.
func hasDigitLength(value string, length int) bool {

	if value == "" {
		return true
	}
	if len(value) != length {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func householdNotFound(householdId string) error {

	return errors2.NewNotFoundError(errors2.HOUSEHOLD_NOT_FOUND,
		fmt.Sprintf("Household %s does not exist.", householdId))
}

func memberNotFound(memberId string) error {

	return errors2.NewNotFoundError(errors2.MEMBER_NOT_FOUND, fmt.Sprintf("Member %s does not exist.", memberId))
}
