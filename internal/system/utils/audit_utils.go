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
	"context"

	blocontext "github.com/wso2/blo-register-service/internal/system/context"
	"github.com/wso2/blo-register-service/internal/system/log"
)

// Audit records a state change made by the officer, tagged with the trace id carried by ctx.
func Audit(ctx context.Context, targetId, targetType, actionId string, data interface{}) {
	log.GetLogger().Audit(log.AuditEvent{
		TargetID:   targetId,
		TargetType: targetType,
		ActionID:   actionId,
		TraceID:    blocontext.GetTraceID(ctx),
		Data:       data,
	})
}
