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

import "github.com/wso2/blo-register-service/internal/models"

// VoterRequest carries the editable fields of a voter. Age is derived from Dob when omitted.
type VoterRequest struct {
	EpicNo        string        `json:"epicNo"`
	Name          string        `json:"name"`
	Gender        models.Gender `json:"gender"`
	Age           *int          `json:"age,omitempty"`
	Dob           string        `json:"dob,omitempty"`
	HouseNo       string        `json:"houseNo"`
	Section       string        `json:"section,omitempty"`
	SectionNumber *int          `json:"sectionNumber,omitempty"`
	Status        models.Status `json:"status,omitempty"`
	RelationType  string        `json:"relationType,omitempty"`
	RelationName  string        `json:"relationName,omitempty"`
	PartNo        *int          `json:"partNo,omitempty"`
	PartSerialNo  *int          `json:"partSerialNo,omitempty"`
}

// HouseGroup holds the voters listed under one house number of a section.
type HouseGroup struct {
	HouseNo string         `json:"houseNo"`
	Voters  []models.Voter `json:"voters"`
}

// SectionGroup is one section of the roll with its houses.
type SectionGroup struct {
	Section    string       `json:"section"`
	HouseCount int          `json:"houseCount"`
	VoterCount int          `json:"voterCount"`
	Houses     []HouseGroup `json:"houses"`
}

// VoterListResponse is a filtered page of the roll with status counts of the whole roll.
type VoterListResponse struct {
	Voters []models.Voter `json:"voters"`
	Counts map[string]int `json:"counts"`
}
