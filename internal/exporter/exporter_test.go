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
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	aggregationModel "github.com/wso2/blo-register-service/internal/aggregation/model"
	aggregationService "github.com/wso2/blo-register-service/internal/aggregation/service"
	"github.com/wso2/blo-register-service/internal/importer"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

var today = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func households() []models.Household {
	return []models.Household{{Id: "h1", HouseNo: "12", Address: "Main Road", Members: []models.Member{
		{Id: "m1", Name: "Ravi Kumar", Dob: "1980-01-01", Gender: models.GenderMale, IsHof: true,
			Aadhar: "123456789012", Phone: "9876543210", Status: models.StatusActive},
		{Id: "m2", Name: "Arjun", Dob: "2007-01-20", Gender: models.GenderMale, Status: models.StatusActive},
	}}}
}

func TestCensusWorkbookReimports(t *testing.T) {
	payload, err := CensusWorkbook(households())
	require.NoError(t, err)

	workbook, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, []string{CensusSheetName}, workbook.GetSheetList())
	require.NoError(t, workbook.Close())

	sheet, err := importer.ReadFirstSheet(bytes.NewReader(payload))
	require.NoError(t, err)
	reimported := importer.ParseCensus(sheet, utils.NewId)

	require.Len(t, reimported, 1)
	assert.Equal(t, "12", reimported[0].HouseNo)
	assert.Equal(t, "Main Road", reimported[0].Address)
	require.Len(t, reimported[0].Members, 2)
	assert.True(t, reimported[0].Members[0].IsHof)
	assert.Equal(t, "123456789012", reimported[0].Members[0].Aadhar)
	assert.Equal(t, "2007-01-20", reimported[0].Members[1].Dob)
}

func TestVoterWorkbookReimports(t *testing.T) {
	payload, err := VoterWorkbook([]models.Voter{
		{Id: "v1", EpicNo: "ABC1", Name: "Ravi Kumar", Gender: models.GenderMale, Age: 44, HouseNo: "12",
			SectionNumber: models.IntPtr(3), Status: models.StatusShifted, LinkedMemberId: "m1"},
	})
	require.NoError(t, err)

	sheet, err := importer.ReadFirstSheet(bytes.NewReader(payload))
	require.NoError(t, err)
	voters := importer.ParseVoters(sheet, today, utils.NewId)

	require.Len(t, voters, 1)
	assert.Equal(t, "ABC1", voters[0].EpicNo)
	assert.Equal(t, 44, voters[0].Age)
	assert.Equal(t, "12", voters[0].HouseNo)
	require.NotNil(t, voters[0].SectionNumber)
	assert.Equal(t, 3, *voters[0].SectionNumber)
}

func TestRegisterPDF(t *testing.T) {
	voters := []models.Voter{{Id: "v1", Name: "Old", Age: 90, Status: models.StatusExpired}}
	register := aggregationModel.Register{
		Settings:           models.Settings{BloName: "Lakshmi", AssemblyConstituency: "North", Part: "12"},
		GeneratedOn:        today,
		Stats:              aggregationService.Dashboard(households(), voters, today),
		AgeCohorts:         aggregationService.AgeCohorts(households(), voters, today),
		ProspectiveVoters:  aggregationService.ProspectiveVoters(households(), today),
		UnregisteredAdults: aggregationService.UnregisteredAdults(households(), voters, today),
		MarkedVoters:       aggregationService.MarkedVoters(voters),
	}

	payload, err := RegisterPDF(register)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF-")))
	assert.Contains(t, string(payload), "%%EOF")
}

func TestRegisterPDFWithEmptyRegister(t *testing.T) {
	payload, err := RegisterPDF(aggregationModel.Register{Settings: models.DefaultSettings(), GeneratedOn: today})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF-")))
}
