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

package constants

const ApiBasePath = "/api/v1"
const HouseholdsApiPath = "/households"
const VotersApiPath = "/voters"
const ReconciliationApiPath = "/reconciliation"
const ReportsApiPath = "/reports"
const ExportsApiPath = "/exports"
const ImportsApiPath = "/imports"
const BackupApiPath = "/backup"
const SettingsApiPath = "/settings"
const AssistantApiPath = "/assistant"
const HealthApiPath = "/health"
const ReadyApiPath = "/ready"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"
const TraceIDHeader = "X-Trace-Id"

// Local storage keys. These mirror the keys the register used on the device.
const (
	HouseholdsStorageKey = "households"
	VotersStorageKey     = "voters"
	SettingsStorageKey   = "settings"
)

// Identifier prefixes for generated records.
const (
	HouseholdIdPrefix = "h_"
	MemberIdPrefix    = "m_"
	VoterIdPrefix     = "v_"
)

const (
	MinimumVotingAge  = 18
	ProspectiveAge    = 17
	AadharLength      = 12
	PhoneNumberLength = 10
)

// Reconciliation scoring weights and limits.
const (
	HouseNoMatchScore  = 5
	NameMatchScore     = 3
	AgeMatchScore      = 2
	AgeMatchTolerance  = 2
	MaxLinkSuggestions = 5
)

// Voter grouping keys.
const (
	UncategorizedSection = "Uncategorized"
	UnassignedHouse      = "Unassigned House"
	SectionGroupPrefix   = "Section "
	AllStatusesCountKey  = "All"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

const AssistantFallbackMessage = "Sorry, I encountered an error while processing your request. " +
	"Please check your connection and try again."
