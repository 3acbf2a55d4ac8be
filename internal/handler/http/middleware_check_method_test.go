// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}

func TestRouteNotFound(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantMessage string
	}{
		{name: "known route", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusOK},
		{name: "second method", method: http.MethodPost, path: "/api/items", wantStatus: http.StatusCreated},
		{
			name:        "unknown path",
			method:      http.MethodGet,
			path:        "/api/nothing",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found: GET /api/nothing",
		},
		{
			name:        "unsupported method answers like an unknown path",
			method:      http.MethodDelete,
			path:        "/api/items",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found: DELETE /api/items",
		},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage == "" {
				return
			}
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			resp := decodeMessage(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
