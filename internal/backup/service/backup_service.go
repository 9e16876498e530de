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

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/wso2/blo-register-service/internal/backup/model"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	settingsStore "github.com/wso2/blo-register-service/internal/settings/store"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/utils"
)

type BackupServiceInterface interface {
	Export() ([]byte, error)
	Restore(ctx context.Context, data []byte) (model.RestoreResult, error)
	ClearAll(ctx context.Context)
}

type BackupService struct {
	households censusStore.HouseholdRepository
	voters     electoralStore.VoterRepository
	settings   settingsStore.SettingsRepository
}

func NewBackupService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	settings settingsStore.SettingsRepository) *BackupService {

	return &BackupService{
		households: households,
		voters:     voters,
		settings:   settings,
	}
}

// Export writes the settings and both collections as indented JSON.
func (bs *BackupService) Export() ([]byte, error) {

	backup := model.Backup{
		BloInfo:    bs.settings.Get(),
		Households: bs.households.List(),
		Voters:     bs.voters.List(),
	}
	if backup.Households == nil {
		backup.Households = []models.Household{}
	}
	if backup.Voters == nil {
		backup.Voters = []models.Voter{}
	}
	payload, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, errors2.NewServerError(errors2.MARSHAL_JSON, err)
	}
	return payload, nil
}

// Restore replaces the collections present in the backup and merges its settings over the
// current ones. Legacy household shapes are converted first. Nothing is applied unless the whole
// document decodes.
func (bs *BackupService) Restore(ctx context.Context, data []byte) (model.RestoreResult, error) {

	if len(bytes.TrimSpace(data)) == 0 {
		return model.RestoreResult{}, errors2.NewBadRequestError(errors2.MALFORMED_BACKUP, "Backup file appears to be empty.")
	}
	if !json.Valid(data) {
		return model.RestoreResult{}, errors2.NewBadRequestError(errors2.MALFORMED_BACKUP, "The content is not valid JSON.")
	}
	var document map[string]json.RawMessage
	if err := json.Unmarshal(data, &document); err != nil || document == nil {
		return model.RestoreResult{}, invalidBackup()
	}

	settingsRaw := document["bloInfo"]
	if !present(settingsRaw) {
		settingsRaw = document["settings"]
	}
	if !present(document["households"]) && !present(document["voters"]) && !present(settingsRaw) {
		return model.RestoreResult{}, invalidBackup()
	}

	var result model.RestoreResult
	var households []models.Household
	var voters []models.Voter
	var err error
	if isArray(document["households"]) {
		if households, err = decodeHouseholds(document["households"]); err != nil {
			return model.RestoreResult{}, malformedBackup(err)
		}
		result.Households = len(households)
	}
	if isArray(document["voters"]) {
		if voters, err = decodeVoters(document["voters"]); err != nil {
			return model.RestoreResult{}, malformedBackup(err)
		}
		result.Voters = len(voters)
	}
	settings := bs.settings.Get()
	if isObject(settingsRaw) {
		if err := json.Unmarshal(settingsRaw, &settings); err != nil {
			return model.RestoreResult{}, malformedBackup(err)
		}
		result.Settings = true
	}

	if households != nil {
		bs.households.ReplaceAll(households)
	}
	if voters != nil {
		bs.voters.ReplaceAll(voters)
	}
	if result.Settings {
		bs.settings.Save(settings)
	}

	utils.Audit(ctx, "backup", log.TargetTypeDataset, log.ActionRestore, result)
	return result, nil
}

// ClearAll empties both collections, resets the settings to their defaults and drops all three
// documents from local storage.
func (bs *BackupService) ClearAll(ctx context.Context) {

	bs.households.Clear()
	bs.voters.Clear()
	bs.settings.Reset()

	utils.Audit(ctx, "all", log.TargetTypeDataset, log.ActionClearAll, nil)
}

func invalidBackup() error {

	return errors2.NewBadRequestError(errors2.INVALID_BACKUP, errors2.INVALID_BACKUP.Description)
}

func malformedBackup(cause error) error {

	log.GetLogger().Debug("Backup could not be decoded", log.Error(cause))
	return errors2.NewBadRequestError(errors2.MALFORMED_BACKUP, fmt.Sprintf("The backup could not be read: %v", cause))
}
