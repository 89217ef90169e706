// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to the HTTP status it is served with.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeMissingField:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeUnknownComponent:
		return http.StatusNotFound
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case errors.ErrCodeInitFailed:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeAssemblyInvariant, errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry the same request.
func retryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeRateLimitExceeded, errors.ErrCodeUnavailable, errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes an ErrorResponse.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError sets the
// status, code, message and details; any other error is served as internal
// with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
		WriteError(w, r, http.StatusInternalServerError, errors.ErrCodeInternal,
			fallbackMessage, retryableFromCode(errors.ErrCodeInternal), details)
		return
	}

	details := mergeDetails(se.Context, extraDetails)
	if se.Cause != nil {
		details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
	}
	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
}

// mergeDetails returns a new map holding a overlaid by b, or nil when both
// are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
