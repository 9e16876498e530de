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

// Gender of a census member or an elector.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ParseGender normalizes free text by its first letter: M is Male, F is Female, anything else Other.
func ParseGender(value string) Gender {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(normalized, "M"):
		return GenderMale
	case strings.HasPrefix(normalized, "F"):
		return GenderFemale
	default:
		return GenderOther
	}
}

// SameGender compares two genders case-insensitively.
func SameGender(a, b Gender) bool {
	return strings.EqualFold(strings.TrimSpace(string(a)), strings.TrimSpace(string(b)))
}

// Status is the lifecycle status shared by members and voters. It is a flat set: any status may
// follow any other.
type Status string

const (
	StatusActive    Status = "Active"
	StatusExpired   Status = "Expired"
	StatusShifted   Status = "Shifted"
	StatusDuplicate Status = "Duplicate"
)

// AllStatuses lists the statuses in display order.
var AllStatuses = []Status{StatusActive, StatusExpired, StatusShifted, StatusDuplicate}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrActive returns Active for an unset status.
func (s Status) OrActive() Status {
	if s == "" {
		return StatusActive
	}
	return s
}

// ParseStatus matches value case-insensitively against the known statuses.
func ParseStatus(value string) (Status, bool) {
	for _, status := range AllStatuses {
		if strings.EqualFold(strings.TrimSpace(value), string(status)) {
			return status, true
		}
	}
	return "", false
}
