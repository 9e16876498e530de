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

package exporter

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/wso2/blo-register-service/internal/models"
)

const (
	CensusSheetName = "Census Data"
	VoterSheetName  = "Voter List"
)

var censusColumns = []interface{}{"House No", "Address", "Member Name", "DOB", "Gender", "Is HOF", "Aadhar", "Phone"}

var voterColumns = []interface{}{"EPIC No", "Name", "Gender", "Age", "House No", "Section", "Section Number", "Status",
	"Linked Member ID"}

// CensusWorkbook writes one row per member, flattened with its household.
func CensusWorkbook(households []models.Household) ([]byte, error) {
	var rows [][]interface{}
	for _, household := range households {
		for _, member := range household.Members {
			isHof := "No"
			if member.IsHof {
				isHof = "Yes"
			}
			rows = append(rows, []interface{}{
				household.HouseNo, household.Address, member.Name, member.Dob, string(member.Gender), isHof,
				member.Aadhar, member.Phone,
			})
		}
	}
	return writeWorkbook(CensusSheetName, censusColumns, rows)
}

// VoterWorkbook writes one row per voter.
func VoterWorkbook(voters []models.Voter) ([]byte, error) {
	rows := make([][]interface{}, 0, len(voters))
	for _, voter := range voters {
		sectionNumber := ""
		if voter.SectionNumber != nil && *voter.SectionNumber != 0 {
			sectionNumber = strconv.Itoa(*voter.SectionNumber)
		}
		rows = append(rows, []interface{}{
			voter.EpicNo, voter.Name, string(voter.Gender), voter.Age, voter.HouseNo, voter.Section, sectionNumber,
			string(voter.Status.OrActive()), voter.LinkedMemberId,
		})
	}
	return writeWorkbook(VoterSheetName, voterColumns, rows)
}

func writeWorkbook(sheetName string, header []interface{}, rows [][]interface{}) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), sheetName); err != nil {
		return nil, errors.Wrap(err, "unable to name worksheet")
	}
	if err := workbook.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "unable to write header row")
	}
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := workbook.SetSheetRow(sheetName, axis, &row); err != nil {
			return nil, errors.Wrapf(err, "unable to write row %d", i+2)
		}
	}
	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "unable to serialize workbook")
	}
	return buffer.Bytes(), nil
}
