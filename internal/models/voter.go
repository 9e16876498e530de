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

package models

// Voter is an entry on the electoral roll. HouseNo is free text matched heuristically against
// census households. LinkedMemberId is a weak reference: the member may no longer exist.
type Voter struct {
	Id             string `json:"id"`
	EpicNo         string `json:"epicNo"`
	Name           string `json:"name"`
	Gender         Gender `json:"gender"`
	Age            int    `json:"age"`
	HouseNo        string `json:"houseNo"`
	Section        string `json:"section,omitempty"`
	SectionNumber  *int   `json:"sectionNumber,omitempty"`
	Status         Status `json:"status"`
	LinkedMemberId string `json:"linkedMemberId,omitempty"`
	Dob            string `json:"dob,omitempty"`
	RelationType   string `json:"relationType,omitempty"`
	RelationName   string `json:"relationName,omitempty"`
	PartNo         *int   `json:"partNo,omitempty"`
	PartSerialNo   *int   `json:"partSerialNo,omitempty"`
}

// IsLinked reports whether the voter carries a member reference.
func (v Voter) IsLinked() bool {
	return v.LinkedMemberId != ""
}

// IntPtr returns a pointer to value.
func IntPtr(value int) *int {
	return &value
}
