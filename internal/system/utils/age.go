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

package utils

import "time"

// Clock supplies the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock returns the wall-clock time.
func SystemClock() time.Time {
	return time.Now()
}

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO calendar date, optionally carrying a time part.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders t as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AgeOn returns the calendar age on today of someone born on dob: the difference in years, less one
// when the birthday has not yet come round this year. ok is false when dob is empty or unparseable.
func AgeOn(dob string, today time.Time) (int, bool) {
	birth, ok := ParseDate(dob)
	if !ok {
		return 0, false
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, true
}

// PreciseAge is an age broken down into whole years, months and days.
type PreciseAge struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// PreciseAgeOn computes the years, months and days elapsed between dob and today. Day deficits
// borrow the length of the month preceding today's month.
func PreciseAgeOn(dob string, today time.Time) (PreciseAge, bool) {
	birth, ok := ParseDate(dob)
	if !ok {
		return PreciseAge{}, false
	}
	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysInPreviousMonth(today)
	}
	if months < 0 {
		years--
		months += 12
	}
	return PreciseAge{Years: years, Months: months, Days: days}, true
}

func daysInPreviousMonth(t time.Time) int {
	// Day zero of the current month is the last day of the previous one.
	return time.Date(t.Year(), t.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
}
