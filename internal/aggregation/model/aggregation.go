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

package model

import (
	"time"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type CensusStats struct {
	TotalHouseholds    int `json:"totalHouseholds"`
	TotalPopulation    int `json:"totalPopulation"`
	MalePopulation     int `json:"malePopulation"`
	FemalePopulation   int `json:"femalePopulation"`
	ProspectiveVoters  int `json:"prospectiveVoters"`
	UnregisteredAdults int `json:"unregisteredAdults"`
}

type ElectionStats struct {
	TotalElectors  int            `json:"totalElectors"`
	MaleElectors   int            `json:"maleElectors"`
	FemaleElectors int            `json:"femaleElectors"`
	MarkedVoters   int            `json:"markedVoters"`
	EPRatio        int            `json:"epRatio"`
	GenderRatio    int            `json:"genderRatio"`
	StatusCounts   map[string]int `json:"statusCounts"`
}

type DashboardStats struct {
	Census   CensusStats   `json:"census"`
	Election ElectionStats `json:"election"`
}

// ProspectiveVoter is a member who is exactly 17, with the household contact details.
type ProspectiveVoter struct {
	models.MemberRef
	HofName      string           `json:"hofName"`
	ContactPhone string           `json:"contactPhone"`
	PreciseAge   utils.PreciseAge `json:"preciseAge"`
}

// UnregisteredAdult is a member of voting age that no voter links to.
type UnregisteredAdult struct {
	models.MemberRef
	Age          int    `json:"age"`
	HofName      string `json:"hofName"`
	ContactPhone string `json:"contactPhone"`
}

// AgeCohort is one row of the age cohort statement. Percentages are rendered with two decimals.
// Max is -1 for the open-ended top band.
type AgeCohort struct {
	Label             string `json:"label"`
	Min               int    `json:"min"`
	Max               int    `json:"max"`
	Population        int    `json:"population"`
	PopulationPercent string `json:"populationPercent"`
	Electors          int    `json:"electors"`
	ElectorPercent    string `json:"electorPercent"`
	RegistrationRate  string `json:"registrationRate"`
}

// Register bundles everything the printed register shows.
type Register struct {
	Settings           models.Settings     `json:"settings"`
	GeneratedOn        time.Time           `json:"generatedOn"`
	Stats              DashboardStats      `json:"stats"`
	AgeCohorts         []AgeCohort         `json:"ageCohorts"`
	ProspectiveVoters  []ProspectiveVoter  `json:"prospectiveVoters"`
	UnregisteredAdults []UnregisteredAdult `json:"unregisteredAdults"`
	MarkedVoters       []models.Voter      `json:"markedVoters"`
}
