// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/inkloth/models"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router.
//
// An existing path requested with an unsupported method answers 404 like an
// unknown path does, so route existence is not leaked to callers probing
// methods. The body is the usual JSON error envelope.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, models.MessageResponse{
		Success: false,
		Message: "Resource not found: " + r.Method + " " + r.URL.Path,
	}, http.StatusNotFound)
}
