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

// LinkSuggestion is a census member ranked as a likely match for a voter.
type LinkSuggestion struct {
	Member models.MemberRef `json:"member"`
	Score  int              `json:"score"`
}

// LinkRequest links a voter to a member. SyncDetails copies the member's census details onto
// the voter.
type LinkRequest struct {
	MemberId    string `json:"memberId"`
	SyncDetails bool   `json:"syncDetails"`
}

type StatusRequest struct {
	Status models.Status `json:"status"`
}

// StatusChange reports a voter status update and whether the linked member followed it.
type StatusChange struct {
	Voter        models.Voter `json:"voter"`
	MemberSynced bool         `json:"memberSynced"`
}

type AutoLinkResult struct {
	Linked int `json:"linked"`
}
