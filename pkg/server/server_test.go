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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNew(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/test": okHandler}))
	if s == nil {
		t.Fatal("expected server instance, got nil")
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}

	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}

	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{
			name:           "ready state",
			ready:          true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not ready state",
			ready:          false,
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestReadinessCheck(t *testing.T) {
	var checkErr error
	s := New(WithReadinessCheck(func() error { return checkErr }))
	s.setReady(true)

	w := httptest.NewRecorder()
	s.handleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d with passing check, got %d", http.StatusOK, w.Code)
	}

	checkErr = fmt.Errorf("no controller registered")
	w = httptest.NewRecorder()
	s.handleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d with failing check, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Reason != "no controller registered" {
		t.Errorf("expected reason from check, got %q", resp.Reason)
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	if w.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow header GET, got %q", w.Header().Get("Allow"))
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1      // 1 req/sec
	cfg.RateLimitBurst = 1 // burst of 1
	cfg.Handlers = map[string]http.HandlerFunc{"/test": okHandler}

	s := New(WithConfig(cfg))

	handler := s.withMiddleware(s.config.Handlers["/test"])

	w1 := httptest.NewRecorder()
	handler(w1, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed with status 200, got %d", w1.Code)
	}

	// bucket is empty now
	w2 := httptest.NewRecorder()
	handler(w2, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected rate limit error with status 429, got %d", w2.Code)
	}

	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}
}

func TestPanicRecovery(t *testing.T) {
	s := New()

	handler := s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("test panic")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d after panic recovery, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestRoutes(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{"/v1/test": okHandler}))
	s.setReady(true)
	routes := s.setupRoutes()

	tests := []struct {
		path   string
		status int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/v1/test", http.StatusOK},
		{"/", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			routes.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("GET %s: expected status %d, got %d", tt.path, tt.status, w.Code)
			}
		})
	}
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Port = 18080 // Use a different port to avoid conflicts
	cfg.ShutdownTimeout = 100 * time.Millisecond
	cfg.Handlers = map[string]http.HandlerFunc{"/test": okHandler}

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.TODO())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	// Wait for server to start
	time.Sleep(50 * time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("shutdown timed out")
	}

	if s.isReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}

func TestDefaultRootHandler(t *testing.T) {
	s := New(WithName("followerd"), WithHandler(map[string]http.HandlerFunc{"/v1/test": okHandler}))

	handler := s.config.Handlers["/"]
	if handler == nil {
		t.Fatal("expected default root handler to be created")
	}

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp rootResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Name != "followerd" {
		t.Errorf("expected name followerd, got %s", resp.Name)
	}

	if !strings.Contains(strings.Join(resp.Routes, " "), "/v1/test") {
		t.Errorf("expected routes to contain /v1/test, got %v", resp.Routes)
	}
}

func TestDefaultRootHandlerMethodNotAllowed(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.config.Handlers["/"](w, httptest.NewRequest(http.MethodPost, "/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	customCalled := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			customCalled = true
			w.WriteHeader(http.StatusOK)
		},
	}))

	w := httptest.NewRecorder()
	s.config.Handlers["/"](w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !customCalled {
		t.Error("expected custom root handler to be called, not default")
	}
}

func TestWithConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Name = "test-server"
	cfg.Port = 9090
	cfg.RateLimit = 500

	s := New(WithConfig(cfg), WithVersion("1.2.3"))

	if s.config.Name != "test-server" {
		t.Errorf("expected name test-server, got %s", s.config.Name)
	}

	if s.config.Port != 9090 {
		t.Errorf("expected port 9090, got %d", s.config.Port)
	}

	if s.config.RateLimit != 500 {
		t.Errorf("expected rate limit 500, got %v", s.config.RateLimit)
	}

	if s.config.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", s.config.Version)
	}
}

func TestDefaultServerName(t *testing.T) {
	s := New()

	if s.config.Name != "server" {
		t.Errorf("expected default name 'server', got %s", s.config.Name)
	}
}
