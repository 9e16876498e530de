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
	aggregationService "github.com/wso2/blo-register-service/internal/aggregation/service"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
)

type ExportServiceInterface interface {
	CensusWorkbook() ([]byte, error)
	VoterWorkbook() ([]byte, error)
	RegisterPDF() ([]byte, error)
}

type ExportService struct {
	households  censusStore.HouseholdRepository
	voters      electoralStore.VoterRepository
	aggregation aggregationService.AggregationServiceInterface
}

func NewExportService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	aggregation aggregationService.AggregationServiceInterface) *ExportService {

	return &ExportService{
		households:  households,
		voters:      voters,
		aggregation: aggregation,
	}
}

func (es *ExportService) CensusWorkbook() ([]byte, error) {

	payload, err := CensusWorkbook(es.households.List())
	return exportResult(payload, err, "census workbook")
}

func (es *ExportService) VoterWorkbook() ([]byte, error) {

	payload, err := VoterWorkbook(es.voters.List())
	return exportResult(payload, err, "voter workbook")
}

func (es *ExportService) RegisterPDF() ([]byte, error) {

	payload, err := RegisterPDF(es.aggregation.Register())
	return exportResult(payload, err, "register PDF")
}

func exportResult(payload []byte, err error, name string) ([]byte, error) {

	if err != nil {
		log.GetLogger().Error("Export failed", log.String("export", name), log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.EXPORT_FAILED.Code,
			Message:     errors2.EXPORT_FAILED.Message,
			Description: "Unable to produce the " + name + ".",
		}, err)
	}
	log.GetLogger().Debug("Export produced", log.String("export", name), log.Int("bytes", len(payload)))
	return payload, nil
}
