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

// MemberRequest carries the editable fields of a member. Aadhar and Phone are ignored unless the
// member is the head of family.
type MemberRequest struct {
	Name   string        `json:"name"`
	Dob    string        `json:"dob"`
	Gender models.Gender `json:"gender"`
	Aadhar string        `json:"aadhar,omitempty"`
	Phone  string        `json:"phone,omitempty"`
	Status models.Status `json:"status,omitempty"`
}

// HouseholdRequest creates a household together with its head of family and any other members.
type HouseholdRequest struct {
	HouseNo      string          `json:"houseNo"`
	Address      string          `json:"address"`
	HeadOfFamily MemberRequest   `json:"headOfFamily"`
	Members      []MemberRequest `json:"members,omitempty"`
}

// HouseholdUpdateRequest edits the household level fields.
type HouseholdUpdateRequest struct {
	HouseNo string `json:"houseNo"`
	Address string `json:"address"`
}
