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
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/wso2/blo-register-service/internal/models"
)

// backupHousehold accepts both household shapes found in backups. Older backups carry the head of
// family as a separate headOfFamily object and may name the house number houseNumber.
type backupHousehold struct {
	Id           string          `json:"id"`
	HouseNo      string          `json:"houseNo"`
	HouseNumber  string          `json:"houseNumber"`
	Address      string          `json:"address"`
	Members      []models.Member `json:"members"`
	HeadOfFamily *models.Member  `json:"headOfFamily"`
}

func (bh backupHousehold) isLegacy() bool {
	return bh.HeadOfFamily != nil
}

// canonical converts either shape to a Household with exactly one head of family.
func (bh backupHousehold) canonical() models.Household {
	household := models.Household{
		Id:      bh.Id,
		HouseNo: bh.HouseNo,
		Address: bh.Address,
	}
	if bh.isLegacy() {
		if bh.HouseNumber != "" {
			household.HouseNo = bh.HouseNumber
		}
		hof := *bh.HeadOfFamily
		hof.IsHof = true
		household.Members = append(household.Members, hof)
		for _, member := range bh.Members {
			if member.Id == hof.Id {
				continue
			}
			member.IsHof = false
			household.Members = append(household.Members, member)
		}
	} else {
		if household.HouseNo == "" {
			household.HouseNo = bh.HouseNumber
		}
		household.Members = append([]models.Member{}, bh.Members...)
	}

	for i := range household.Members {
		household.Members[i].Status = household.Members[i].Status.OrActive()
	}
	household.NormalizeHeadOfFamily()
	return household
}

// decodeHouseholds reads the households array of a backup.
func decodeHouseholds(raw json.RawMessage) ([]models.Household, error) {
	var entries []backupHousehold
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "unable to decode households")
	}
	households := make([]models.Household, 0, len(entries))
	for _, entry := range entries {
		households = append(households, entry.canonical())
	}
	return households, nil
}

func decodeVoters(raw json.RawMessage) ([]models.Voter, error) {
	var voters []models.Voter
	if err := json.Unmarshal(raw, &voters); err != nil {
		return nil, errors.Wrap(err, "unable to decode voters")
	}
	for i := range voters {
		voters[i].Status = voters[i].Status.OrActive()
	}
	return voters, nil
}

// present reports whether a backup field holds something other than null.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
