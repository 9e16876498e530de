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
	"strings"
	"time"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

// Census workbook columns.
const (
	ColumnHouseNo    = "House No"
	ColumnAddress    = "Address"
	ColumnMemberName = "Member Name"
	ColumnDob        = "DOB"
	ColumnGender     = "Gender"
	ColumnIsHof      = "Is HOF"
	ColumnAadhar     = "Aadhar"
	ColumnPhone      = "Phone"
)

const unnamed = "Unnamed"

// ParseCensus groups census rows into households by house number, compared case-insensitively and
// keeping the first spelling. Rows without a house number are dropped. Every household leaves with exactly one head of family: the first flagged
// member, or the first member when nobody is flagged.
func ParseCensus(sheet Sheet, newId utils.IdGenerator) []models.Household {
	var households []*models.Household
	byHouseNo := map[string]*models.Household{}

	for _, record := range sheet.Records() {
		houseNo := CellString(record[ColumnHouseNo])
		if houseNo == "" {
			continue
		}
		member := models.Member{
			Id:     newId(constants.MemberIdPrefix),
			Name:   CellString(record[ColumnMemberName]),
			Dob:    NormalizeDate(record[ColumnDob]),
			Gender: models.ParseGender(CellString(record[ColumnGender])),
			IsHof:  isYes(record[ColumnIsHof]),
			Aadhar: CellString(record[ColumnAadhar]),
			Phone:  CellString(record[ColumnPhone]),
			Status: models.StatusActive,
		}
		if member.Name == "" {
			member.Name = unnamed
		}

		key := models.NormalizeHouseNo(houseNo)
		household, exists := byHouseNo[key]
		if !exists {
			household = &models.Household{
				Id:      newId(constants.HouseholdIdPrefix),
				HouseNo: houseNo,
				Address: CellString(record[ColumnAddress]),
			}
			byHouseNo[key] = household
			households = append(households, household)
		}
		household.Members = append(household.Members, member)
	}

	parsed := make([]models.Household, 0, len(households))
	for _, household := range households {
		household.NormalizeHeadOfFamily()
		for i := range household.Members {
			if !household.Members[i].IsHof {
				household.Members[i].Aadhar = ""
				household.Members[i].Phone = ""
			}
		}
		parsed = append(parsed, *household)
	}
	return parsed
}

// voterFields maps voter attributes to the normalized headers accepted for them, in priority order.
var voterFields = map[string][]string{
	"epicNo":        {"epicno", "epic"},
	"firstName":     {"firstname"},
	"lastName":      {"lastname"},
	"name":          {"name", "fullname"},
	"gender":        {"gender"},
	"age":           {"age"},
	"dob":           {"dob", "dateofbirth"},
	"relationType":  {"rlntype", "relationtype"},
	"relationName":  {"rlnname", "relationname", "rln"},
	"houseNo":       {"address", "houseno"},
	"section":       {"section"},
	"sectionNumber": {"sectionno", "sectionnumber"},
	"partNo":        {"partno"},
	"partSerialNo":  {"partserialno", "slnoinpart", "serialno"},
}

// resolveVoterColumns finds, for each voter attribute, the actual header of the sheet that
// carries it.
func resolveVoterColumns(headers []string) map[string]string {
	normalized := map[string]string{}
	for _, header := range headers {
		key := NormalizeHeader(header)
		if key == "" {
			continue
		}
		if _, seen := normalized[key]; !seen {
			normalized[key] = header
		}
	}

	columns := map[string]string{}
	for field, aliases := range voterFields {
		for _, alias := range aliases {
			if header, ok := normalized[alias]; ok {
				columns[field] = header
				break
			}
		}
	}
	return columns
}

// ParseVoters reads electoral roll rows using the header alias table. Missing or unreadable
// values fall back to defaults rather than failing the row.
func ParseVoters(sheet Sheet, today time.Time, newId utils.IdGenerator) []models.Voter {
	columns := resolveVoterColumns(sheet.Headers)
	cell := func(record Record, field string) interface{} {
		header, ok := columns[field]
		if !ok {
			return nil
		}
		return record[header]
	}

	records := sheet.Records()
	voters := make([]models.Voter, 0, len(records))
	for _, record := range records {
		name := CellString(cell(record, "name"))
		if name == "" {
			name = strings.TrimSpace(CellString(cell(record, "firstName")) + " " + CellString(cell(record, "lastName")))
		}
		if name == "" {
			name = unnamed
		}

		dob := ""
		if raw := cell(record, "dob"); CellString(raw) != "" {
			dob = NormalizeDate(raw)
		}
		age, ok := parseLeadingInt(cell(record, "age"))
		if !ok {
			age, _ = utils.AgeOn(dob, today)
		}

		voters = append(voters, models.Voter{
			Id:            newId(constants.VoterIdPrefix),
			EpicNo:        CellString(cell(record, "epicNo")),
			Name:          name,
			Gender:        models.ParseGender(CellString(cell(record, "gender"))),
			Age:           age,
			HouseNo:       CellString(cell(record, "houseNo")),
			Section:       CellString(cell(record, "section")),
			SectionNumber: optionalInt(cell(record, "sectionNumber")),
			Status:        models.StatusActive,
			Dob:           dob,
			RelationType:  CellString(cell(record, "relationType")),
			RelationName:  CellString(cell(record, "relationName")),
			PartNo:        optionalInt(cell(record, "partNo")),
			PartSerialNo:  optionalInt(cell(record, "partSerialNo")),
		})
	}
	return voters
}

func isYes(value interface{}) bool {
	switch strings.ToLower(CellString(value)) {
	case "yes", "true":
		return true
	default:
		return false
	}
}
