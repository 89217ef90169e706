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
	"net/http"
	"time"

	"github.com/NVIDIA/path-follower/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// handleHealth is the liveness probe. It answers as long as the process serves.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
	})
}

// handleReady is the readiness probe.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	if reason := s.notReadyReason(); reason != "" {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusNotReady,
			Timestamp: time.Now().UTC(),
			Reason:    reason,
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    statusReady,
		Timestamp: time.Now().UTC(),
	})
}

// notReadyReason returns why the server should not receive traffic, or "".
func (s *Server) notReadyReason() string {
	if !s.isReady() {
		return "server is not listening"
	}
	if s.readyCheck == nil {
		return ""
	}
	if err := s.readyCheck(); err != nil {
		return err.Error()
	}
	return ""
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}
