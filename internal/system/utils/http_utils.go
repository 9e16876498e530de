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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wso2/blo-register-service/internal/system/constants"
	blocontext "github.com/wso2/blo-register-service/internal/system/context"
	customerrors "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		if clientError.TraceID == "" {
			clientError.TraceID = blocontext.GetTraceID(r.Context())
		}
		WriteErrorResponse(w, clientError)
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error(), log.String("traceId", blocontext.GetTraceID(r.Context())))
	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

func WriteErrorResponse(w http.ResponseWriter, err *customerrors.ClientError) {

	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(err.StatusCode)

	_ = json.NewEncoder(w).Encode(err.ErrorMessage)
}

// RespondJSON writes body as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, statusCode int, body interface{}) {

	w.Header().Set("Content-Type", constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.GetLogger().Error("Failed to encode response body", log.Error(err))
	}
}

// RespondFile writes a downloadable payload.
func RespondFile(w http.ResponseWriter, contentType, fileName string, payload []byte) {

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// DecodeJSONBody decodes the request body into out, rejecting unknown fields. Decode failures come
// back as a bad request client error naming the resource.
func DecodeJSONBody(r *http.Request, out interface{}, resourceName string) error {

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return customerrors.NewBadRequestError(customerrors.BAD_REQUEST, HandleDecodeError(err, resourceName))
	}
	return nil
}
