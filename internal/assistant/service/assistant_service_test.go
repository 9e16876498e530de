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
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

// MockClient implements Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Generate(ctx context.Context, systemInstruction, question string) (string, error) {
	args := m.Called(ctx, systemInstruction, question)
	return args.String(0), args.Error(1)
}

func newAssistant(client Client) *AssistantService {
	kv := storage.NewMemoryStore()
	households := censusStore.NewHouseholdStore(kv)
	households.Add(models.Household{Id: "h1", HouseNo: "12", Members: []models.Member{{Id: "m1", Name: "Ravi Kumar"}}})
	voters := electoralStore.NewVoterStore(kv)
	voters.Add(models.Voter{Id: "v1", EpicNo: "EPIC777", Name: "Ravi Kumar"})
	return NewAssistantService(households, voters, client)
}

func TestAskSendsRegisterSnapshot(t *testing.T) {
	client := new(MockClient)
	client.
		On("Generate", mock.Anything, mock.MatchedBy(func(instruction string) bool {
			return containsAll(instruction, "Booth Level Officer", `"houseNo":"12"`, "EPIC777")
		}), "How many houses?").
		Return("There is 1 household.", nil)

	answer, err := newAssistant(client).Ask(context.Background(), "  How many houses? ")

	require.NoError(t, err)
	assert.Equal(t, "There is 1 household.", answer.Answer)
	assert.False(t, answer.Fallback)
	client.AssertExpectations(t)
}

func TestAskFallsBackOnFailure(t *testing.T) {
	client := new(MockClient)
	client.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	answer, err := newAssistant(client).Ask(context.Background(), "Who lives in house 12?")

	require.NoError(t, err)
	assert.True(t, answer.Fallback)
	assert.Equal(t, constants.AssistantFallbackMessage, answer.Answer)
}

func TestAskWithoutClient(t *testing.T) {
	answer, err := newAssistant(nil).Ask(context.Background(), "Anything?")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	client := new(MockClient)
	_, err := newAssistant(client).Ask(context.Background(), "   ")
	assert.True(t, errors2.HasCode(err, errors2.EMPTY_QUESTION))
	client.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-2.5-flash")
	assert.Error(t, err)
}

func containsAll(text string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(text, part) {
			return false
		}
	}
	return true
}
