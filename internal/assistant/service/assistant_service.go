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
	"encoding/json"
	"strings"

	"github.com/wso2/blo-register-service/internal/assistant/model"
	censusStore "github.com/wso2/blo-register-service/internal/census/store"
	electoralStore "github.com/wso2/blo-register-service/internal/electoral/store"
	"github.com/wso2/blo-register-service/internal/system/constants"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
)

const instructionPreamble = `You are a helpful AI assistant for a Booth Level Officer (BLO) in India.
Your task is to answer questions based ONLY on the JSON data provided below. Do not use any external knowledge or make up information.
If the data is insufficient to answer a question, state that clearly. Be concise and accurate in your responses.
When listing people or households, format them clearly.`

type AssistantServiceInterface interface {
	Ask(ctx context.Context, question string) (model.Answer, error)
}

// AssistantService answers free text questions over a JSON snapshot of the register.
type AssistantService struct {
	households censusStore.HouseholdRepository
	voters     electoralStore.VoterRepository
	client     Client
}

// NewAssistantService builds the service. A nil client makes every question fall back.
func NewAssistantService(households censusStore.HouseholdRepository, voters electoralStore.VoterRepository,
	client Client) *AssistantService {

	return &AssistantService{
		households: households,
		voters:     voters,
		client:     client,
	}
}

// Ask makes a single call to the model. Any failure yields the fallback answer rather than an error.
func (as *AssistantService) Ask(ctx context.Context, question string) (model.Answer, error) {

	question = strings.TrimSpace(question)
	if question == "" {
		return model.Answer{}, errors2.NewBadRequestError(errors2.EMPTY_QUESTION, "Enter a question about the census or voter data.")
	}
	logger := log.GetLogger()
	if as.client == nil {
		logger.Warn("Assistant is not configured, returning fallback answer")
		return fallback(), nil
	}

	instruction, err := as.systemInstruction()
	if err != nil {
		logger.Error("Failed to build assistant instruction", log.Error(err))
		return fallback(), nil
	}
	answer, err := as.client.Generate(ctx, instruction, question)
	if err != nil {
		logger.Error("Assistant request failed", log.Error(err))
		return fallback(), nil
	}
	return model.Answer{Answer: answer}, nil
}

func (as *AssistantService) systemInstruction() (string, error) {

	households, err := json.Marshal(as.households.List())
	if err != nil {
		return "", err
	}
	voters, err := json.Marshal(as.voters.List())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(instructionPreamble)
	b.WriteString("\n\nHere is the census data which includes all household members:\n")
	b.Write(households)
	b.WriteString("\n\nHere is the electoral roll data which includes all registered voters:\n")
	b.Write(voters)
	b.WriteString("\n")
	return b.String(), nil
}

func fallback() model.Answer {

	return model.Answer{Answer: constants.AssistantFallbackMessage, Fallback: true}
}
