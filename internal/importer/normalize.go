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

package importer

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/wso2/blo-register-service/internal/system/utils"
)

// excelEpochOffset is the number of days between the spreadsheet serial epoch and 1970-01-01,
// including the phantom 29 February 1900.
const excelEpochOffset = 25569

var dateStringLayouts = []string{
	utils.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// NormalizeDate turns a cell into an ISO date. Numbers are read as spreadsheet serial dates,
// strings are parsed against common layouts, and anything unparseable is returned as written.
func NormalizeDate(value interface{}) string {
	switch v := value.(type) {
	case float64:
		days := int64(math.Floor(v - excelEpochOffset))
		return utils.FormatDate(time.Unix(days*86400, 0).UTC())
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return ""
		}
		for _, layout := range dateStringLayouts {
			if parsed, err := time.Parse(layout, text); err == nil {
				return utils.FormatDate(parsed)
			}
		}
		return text
	default:
		return CellString(value)
	}
}

// NormalizeHeader lowercases a header and strips whitespace and punctuation, so "EPIC No." and
// "epic_no" both become "epicno".
func NormalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseLeadingInt reads the integer at the start of a cell, ignoring anything after it.
func parseLeadingInt(value interface{}) (int, bool) {
	if number, ok := value.(float64); ok {
		return int(math.Trunc(number)), true
	}
	text := CellString(value)
	end := 0
	for end < len(text) && (text[end] >= '0' && text[end] <= '9' || (end == 0 && (text[end] == '-' || text[end] == '+'))) {
		end++
	}
	parsed, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func optionalInt(value interface{}) *int {
	if parsed, ok := parseLeadingInt(value); ok {
		return &parsed
	}
	return nil
}
