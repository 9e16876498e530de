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
	"context"
	"fmt"
	"io"
	"strings"

	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

// Kind selects the dataset a workbook holds.
type Kind string

const (
	KindCensus Kind = "census"
	KindVoters Kind = "voters"
)

// Mode decides how imported records meet the existing collection.
type Mode string

const (
	ModeMerge   Mode = "merge"
	ModeReplace Mode = "replace"
)

// ParseMode accepts "merge" or "replace" in any case.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", errors2.NewBadRequestError(errors2.INVALID_IMPORT_MODE, errors2.INVALID_IMPORT_MODE.Description)
	}
}

// ImportResult summarizes an applied import.
type ImportResult struct {
	Kind     Kind `json:"kind"`
	Mode     Mode `json:"mode"`
	Imported int  `json:"imported"`
	Total    int  `json:"total"`
}

type ImportServiceInterface interface {
	Import(ctx context.Context, kind Kind, reader io.Reader, mode Mode) (ImportResult, error)
}

type ImportService struct {
	households censusStore.HouseholdRepository
	voters     electoralStore.VoterRepository
	clock      utils.Clock
	newId      utils.IdGenerator
}

func NewImportService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	clock utils.Clock) *ImportService {

	return &ImportService{
		households: households,
		voters:     voters,
		clock:      clock,
		newId:      utils.NewId,
	}
}

// Import parses the first worksheet of the workbook and applies it. Nothing is applied when the
// workbook cannot be read.
func (is *ImportService) Import(ctx context.Context, kind Kind, reader io.Reader, mode Mode) (ImportResult, error) {

	if mode != ModeMerge && mode != ModeReplace {
		return ImportResult{}, errors2.NewBadRequestError(errors2.INVALID_IMPORT_MODE, errors2.INVALID_IMPORT_MODE.Description)
	}
	sheet, err := ReadFirstSheet(reader)
	if err != nil {
		log.GetLogger().Debug("Failed to read import workbook", log.String("kind", string(kind)), log.Error(err))
		return ImportResult{}, errors2.NewBadRequestError(errors2.INVALID_IMPORT_FILE,
			fmt.Sprintf("Error parsing %s file: %v", kind, err))
	}

	switch kind {
	case KindCensus:
		return is.applyCensus(ctx, ParseCensus(sheet, is.newId), mode), nil
	case KindVoters:
		return is.applyVoters(ctx, ParseVoters(sheet, is.clock(), is.newId), mode), nil
	default:
		return ImportResult{}, errors2.NewBadRequestError(errors2.INVALID_IMPORT_FILE,
			fmt.Sprintf("Unknown import kind %q.", kind))
	}
}

// applyCensus merges by folding members into households that share a house number, so house
// numbers stay unique. Folded members never displace the existing head of family.
func (is *ImportService) applyCensus(ctx context.Context, imported []models.Household, mode Mode) ImportResult {

	households := imported
	if mode == ModeMerge {
		households = MergeHouseholds(is.households.List(), imported)
	}
	is.households.ReplaceAll(households)

	result := ImportResult{Kind: KindCensus, Mode: mode, Imported: len(imported), Total: len(households)}
	utils.Audit(ctx, string(KindCensus), log.TargetTypeDataset, log.ActionImportCensus, result)
	return result
}

func (is *ImportService) applyVoters(ctx context.Context, imported []models.Voter, mode Mode) ImportResult {

	voters := imported
	if mode == ModeMerge {
		voters = append(is.voters.List(), imported...)
	}
	is.voters.ReplaceAll(voters)

	result := ImportResult{Kind: KindVoters, Mode: mode, Imported: len(imported), Total: len(voters)}
	utils.Audit(ctx, string(KindVoters), log.TargetTypeDataset, log.ActionImportVoters, result)
	return result
}

// MergeHouseholds appends imported households to existing ones. An imported household whose house
// number is already present contributes its members, unflagged and without contact fields, to
// the existing household instead.
func MergeHouseholds(existing, imported []models.Household) []models.Household {

	merged := make([]models.Household, 0, len(existing)+len(imported))
	for _, household := range existing {
		merged = append(merged, household.Clone())
	}
	for _, household := range imported {
		target := -1
		for i := range merged {
			if models.SameHouseNo(merged[i].HouseNo, household.HouseNo) {
				target = i
				break
			}
		}
		if target < 0 {
			merged = append(merged, household.Clone())
			continue
		}
		for _, member := range household.Members {
			member.IsHof = false
			member.Aadhar = ""
			member.Phone = ""
			merged[target].Members = append(merged[target].Members, member)
		}
		merged[target].NormalizeHeadOfFamily()
	}
	return merged
}
