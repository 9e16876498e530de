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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/blo-register-service/internal/assistant/handler"
	"github.com/wso2/blo-register-service/internal/assistant/service"
	"github.com/wso2/blo-register-service/internal/system/constants"
)

type AssistantService struct {
	assistantHandler *handler.AssistantHandler
}

func NewAssistantService(mux *http.ServeMux, apiBasePath string, assistantService service.AssistantServiceInterface) *AssistantService {

	instance := &AssistantService{
		assistantHandler: handler.NewAssistantHandler(assistantService),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *AssistantService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	mux.HandleFunc(fmt.Sprintf("POST %s%s/ask", apiBasePath, constants.AssistantApiPath), s.assistantHandler.Ask)
}
