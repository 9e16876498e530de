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

import "strings"

// Member is a person belonging to a household. Aadhar and Phone are only kept for the head of
// family. An empty Dob means the date of birth is unknown.
type Member struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Dob    string `json:"dob"`
	Gender Gender `json:"gender"`
	IsHof  bool   `json:"isHof"`
	Aadhar string `json:"aadhar,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Status Status `json:"status,omitempty"`
}

// Household is a residence. Members are kept in display order; after normalization the head of
// family comes first.
type Household struct {
	Id      string   `json:"id"`
	HouseNo string   `json:"houseNo"`
	Address string   `json:"address"`
	Members []Member `json:"members"`
}

// MemberRef is a member flattened together with its owning household.
type MemberRef struct {
	Member
	HouseholdId string `json:"householdId"`
	HouseNo     string `json:"houseNo"`
}

// NormalizeHouseNo is the comparison key for house numbers.
func NormalizeHouseNo(houseNo string) string {
	return strings.ToLower(strings.TrimSpace(houseNo))
}

// SameHouseNo compares two house numbers case-insensitively after trimming. Blank numbers never match.
func SameHouseNo(a, b string) bool {
	na, nb := NormalizeHouseNo(a), NormalizeHouseNo(b)
	return na != "" && na == nb
}

// HeadOfFamily returns the first member flagged as head of family.
func (h *Household) HeadOfFamily() (Member, bool) {
	for _, member := range h.Members {
		if member.IsHof {
			return member, true
		}
	}
	return Member{}, false
}

// MemberIndex returns the position of the member with the given id, or -1.
func (h *Household) MemberIndex(memberId string) int {
	for i, member := range h.Members {
		if member.Id == memberId {
			return i
		}
	}
	return -1
}

// NormalizeHeadOfFamily keeps exactly one head of family in a non-empty household: the first
// flagged member, or the first member when none is flagged. Demoted members lose the contact
// fields that only a head of family carries.
func (h *Household) NormalizeHeadOfFamily() {
	if len(h.Members) == 0 {
		return
	}
	hofIndex := 0
	for i, member := range h.Members {
		if member.IsHof {
			hofIndex = i
			break
		}
	}
	for i := range h.Members {
		wasHof := h.Members[i].IsHof
		h.Members[i].IsHof = i == hofIndex
		if wasHof && i != hofIndex {
			h.Members[i].Aadhar = ""
			h.Members[i].Phone = ""
		}
	}
}

// Clone returns a deep copy of the household.
func (h Household) Clone() Household {
	clone := h
	clone.Members = append([]Member(nil), h.Members...)
	return clone
}

// FlattenMembers returns every member annotated with its household, in household then member order.
func FlattenMembers(households []Household) []MemberRef {
	var refs []MemberRef
	for _, household := range households {
		for _, member := range household.Members {
			refs = append(refs, MemberRef{
				Member:      member,
				HouseholdId: household.Id,
				HouseNo:     household.HouseNo,
			})
		}
	}
	return refs
}
