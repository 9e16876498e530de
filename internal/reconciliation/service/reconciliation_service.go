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
	"strings"

	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralService "github.com/wso2/blo-register-service/internal/electoral/service"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/reconciliation/model"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type ReconciliationServiceInterface interface {
	Suggest(voterId string) ([]model.LinkSuggestion, error)
	AutoLinkAll(ctx context.Context) int
	LinkVoterToMember(ctx context.Context, voterId, memberId string, syncDetails bool) (models.Voter, error)
	SetVoterStatus(ctx context.Context, voterId string, status models.Status) (model.StatusChange, error)
}

// ReconciliationService keeps electoral roll entries and census members that denote the same
// person tied together.
type ReconciliationService struct {
	households censusStore.HouseholdRepository
	voters     electoralStore.VoterRepository
	clock      utils.Clock
}

func NewReconciliationService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	clock utils.Clock) *ReconciliationService {

	return &ReconciliationService{
		households: households,
		voters:     voters,
		clock:      clock,
	}
}

// Suggest ranks census members as link candidates for the given voter.
func (rs *ReconciliationService) Suggest(voterId string) ([]model.LinkSuggestion, error) {

	voter, found := rs.voters.Get(voterId)
	if !found {
		return nil, electoralService.VoterNotFound(voterId)
	}
	return SuggestLinks(voter, rs.households.Members(), rs.clock()), nil
}

// AutoLinkAll runs AutoLink over the whole roll and stores the result. It returns the number of
// voters newly linked; zero is not an error.
func (rs *ReconciliationService) AutoLinkAll(ctx context.Context) int {

	updated, linked := AutoLink(rs.voters.List(), rs.households.List())
	if linked == 0 {
		log.GetLogger().Info("Auto link found no new matches")
		return 0
	}
	rs.voters.ReplaceAll(updated)

	utils.Audit(ctx, "voters", log.TargetTypeDataset, log.ActionAutoLink, map[string]int{"linked": linked})
	return linked
}

// LinkVoterToMember links the voter to the member, replacing any existing link. The member is
// not required to live at the voter's house. With syncDetails the voter takes the member's name,
// gender, age and house number when the member can be resolved.
func (rs *ReconciliationService) LinkVoterToMember(ctx context.Context, voterId, memberId string,
	syncDetails bool) (models.Voter, error) {

	if strings.TrimSpace(memberId) == "" {
		return models.Voter{}, errors2.NewBadRequestError(errors2.BAD_REQUEST, "A member id is required to link a voter.")
	}
	voter, found := rs.voters.Get(voterId)
	if !found {
		return models.Voter{}, electoralService.VoterNotFound(voterId)
	}

	voter.LinkedMemberId = memberId
	synced := false
	if syncDetails {
		if member, ok := rs.households.FindMember(memberId); ok {
			voter.Name = member.Name
			voter.Gender = member.Gender
			if age, ok := utils.AgeOn(member.Dob, rs.clock()); ok {
				voter.Age = age
			}
			voter.HouseNo = member.HouseNo
			synced = true
		}
	}
	rs.voters.Update(voter)

	utils.Audit(ctx, voterId, log.TargetTypeVoter, log.ActionLinkVoter, map[string]interface{}{
		"memberId":      memberId,
		"detailsSynced": synced,
	})
	return voter, nil
}

// SetVoterStatus moves the voter to any status. A linked member that resolves is moved to the
// same status; a dangling link only affects the voter.
func (rs *ReconciliationService) SetVoterStatus(ctx context.Context, voterId string,
	status models.Status) (model.StatusChange, error) {

	if !status.IsValid() {
		return model.StatusChange{}, errors2.NewBadRequestError(errors2.INVALID_STATUS, errors2.INVALID_STATUS.Description)
	}
	voter, found := rs.voters.Get(voterId)
	if !found {
		return model.StatusChange{}, electoralService.VoterNotFound(voterId)
	}
	rs.voters.SetStatus(voterId, status)
	voter.Status = status

	utils.Audit(ctx, voterId, log.TargetTypeVoter, log.ActionVoterStatus, map[string]string{"status": string(status)})

	change := model.StatusChange{Voter: voter}
	if !voter.IsLinked() {
		return change, nil
	}
	member, ok := rs.households.FindMember(voter.LinkedMemberId)
	if !ok {
		log.GetLogger().Debug("Linked member no longer exists, status applied to voter only",
			log.String("voterId", voterId), log.String("memberId", voter.LinkedMemberId))
		return change, nil
	}
	if member.Status != status {
		rs.households.UpdateMemberStatus(member.Id, status)
		change.MemberSynced = true
		utils.Audit(ctx, member.Id, log.TargetTypeMember, log.ActionMemberStatus, map[string]string{
			"status":  string(status),
			"voterId": voterId,
		})
	}
	return change, nil
}
