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

package errors

const errorPrefix = "BLO-"

var (
	// Server error codes

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while marshalling JSON.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Unable to initialize database client.",
	}

	EXECUTE_QUERY = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while executing the database query.",
	}

	STORAGE_INIT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Unable to initialize local storage.",
	}

	EXPORT_FAILED = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Failed to export data.",
	}

	// Client error codes
	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Invalid body format.",
	}

	INVALID_HOUSEHOLD = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Household validation failed.",
	}

	DUPLICATE_HOUSE_NO = ErrorMessage{
		Code:        errorPrefix + "10003",
		Message:     "This House Number already exists.",
		Description: "Another household is already registered with the given house number.",
	}

	UNDERAGE_HOF = ErrorMessage{
		Code:        errorPrefix + "10004",
		Message:     "Head of Family must be at least 18 years old.",
		Description: "The date of birth of the head of family makes them younger than 18.",
	}

	INVALID_IDENTIFIER_LENGTH = ErrorMessage{
		Code:        errorPrefix + "10005",
		Message:     "Aadhar must be 12 digits and Phone must be 10 digits.",
		Description: "Aadhar and phone numbers of the head of family must be 12 and 10 digits.",
	}

	INVALID_MEMBER = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Member validation failed.",
	}

	HOF_DELETE_NOT_ALLOWED = ErrorMessage{
		Code:        errorPrefix + "10007",
		Message:     "Head of Family cannot be deleted.",
		Description: "Delete the whole household to remove its head of family.",
	}

	HOUSEHOLD_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "Household not found.",
	}

	MEMBER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Member not found.",
	}

	VOTER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Voter not found.",
	}

	INVALID_VOTER = ErrorMessage{
		Code:    errorPrefix + "10011",
		Message: "Voter validation failed.",
	}

	INVALID_STATUS = ErrorMessage{
		Code:        errorPrefix + "10012",
		Message:     "Invalid status.",
		Description: "Status must be one of Active, Expired, Shifted or Duplicate.",
	}

	INVALID_IMPORT_FILE = ErrorMessage{
		Code:    errorPrefix + "10013",
		Message: "Error parsing import file.",
	}

	INVALID_IMPORT_MODE = ErrorMessage{
		Code:        errorPrefix + "10014",
		Message:     "Invalid import mode.",
		Description: "Import mode must be either merge or replace.",
	}

	MALFORMED_BACKUP = ErrorMessage{
		Code:    errorPrefix + "10015",
		Message: "Restore failed. The file is not a valid JSON backup file.",
	}

	INVALID_BACKUP = ErrorMessage{
		Code:        errorPrefix + "10016",
		Message:     "Invalid backup file.",
		Description: "The backup must contain at least one of households, voters, bloInfo or settings.",
	}

	EMPTY_QUESTION = ErrorMessage{
		Code:    errorPrefix + "10017",
		Message: "Question cannot be empty.",
	}
)
