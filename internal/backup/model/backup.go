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

package model

import "github.com/wso2/blo-register-service/internal/models"

// Backup is the JSON document written by a backup and read by a restore.
type Backup struct {
	BloInfo    models.Settings    `json:"bloInfo"`
	Households []models.Household `json:"households"`
	Voters     []models.Voter     `json:"voters"`
}

// RestoreResult counts what a restore applied.
type RestoreResult struct {
	Households int  `json:"households"`
	Voters     int  `json:"voters"`
	Settings   bool `json:"settings"`
}
