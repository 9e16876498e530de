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
	"github.com/wso2/blo-register-service/internal/aggregation/model"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	settingsStore "github.com/wso2/blo-register-service/internal/settings/store"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type AggregationServiceInterface interface {
	DashboardStats() model.DashboardStats
	AgeCohorts() []model.AgeCohort
	ProspectiveVoters() []model.ProspectiveVoter
	UnregisteredAdults() []model.UnregisteredAdult
	MarkedVoters() []models.Voter
	Register() model.Register
}

// AggregationService recomputes register statistics from the current collections on every call.
type AggregationService struct {
	households censusStore.HouseholdRepository
	voters     electoralStore.VoterRepository
	settings   settingsStore.SettingsRepository
	clock      utils.Clock
}

func NewAggregationService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	settings settingsStore.SettingsRepository, clock utils.Clock) *AggregationService {

	return &AggregationService{
		households: households,
		voters:     voters,
		settings:   settings,
		clock:      clock,
	}
}

func (as *AggregationService) DashboardStats() model.DashboardStats {

	return Dashboard(as.households.List(), as.voters.List(), as.clock())
}

func (as *AggregationService) AgeCohorts() []model.AgeCohort {

	return AgeCohorts(as.households.List(), as.voters.List(), as.clock())
}

func (as *AggregationService) ProspectiveVoters() []model.ProspectiveVoter {

	return ProspectiveVoters(as.households.List(), as.clock())
}

func (as *AggregationService) UnregisteredAdults() []model.UnregisteredAdult {

	return UnregisteredAdults(as.households.List(), as.voters.List(), as.clock())
}

func (as *AggregationService) MarkedVoters() []models.Voter {

	return MarkedVoters(as.voters.List())
}

// Register takes one snapshot of both collections and derives every section of the printed
// register from it.
func (as *AggregationService) Register() model.Register {

	households := as.households.List()
	voters := as.voters.List()
	today := as.clock()
	return model.Register{
		Settings:           as.settings.Get(),
		GeneratedOn:        today,
		Stats:              Dashboard(households, voters, today),
		AgeCohorts:         AgeCohorts(households, voters, today),
		ProspectiveVoters:  ProspectiveVoters(households, today),
		UnregisteredAdults: UnregisteredAdults(households, voters, today),
		MarkedVoters:       MarkedVoters(voters),
	}
}
