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

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description"`
	TraceID     string `json:"trace_id,omitempty"`
}

type ClientError struct {
	ErrorMessage
	StatusCode int
}

type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("[%s] %s %s", e.Code, e.Message, e.Description)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// NewBadRequestError creates a 400 client error carrying the given description.
func NewBadRequestError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return NewClientError(msg, http.StatusBadRequest)
}

// NewNotFoundError creates a 404 client error carrying the given description.
func NewNotFoundError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return NewClientError(msg, http.StatusNotFound)
}

// NewConflictError creates a 409 client error carrying the given description.
func NewConflictError(msg ErrorMessage, description string) *ClientError {
	msg.Description = description
	return NewClientError(msg, http.StatusConflict)
}

func NewServerErrorWithTraceID(msg ErrorMessage, cause error, traceID string) *ServerError {
	msg.TraceID = traceID
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientErrorWithTraceID(msg ErrorMessage, code int, traceID string) *ClientError {
	msg.TraceID = traceID
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// HasCode reports whether err is a client or server error with the given error code.
func HasCode(err error, msg ErrorMessage) bool {
	var clientError *ClientError
	if errors.As(err, &clientError) {
		return clientError.Code == msg.Code
	}
	var serverError *ServerError
	if errors.As(err, &serverError) {
		return serverError.Code == msg.Code
	}
	return false
}
