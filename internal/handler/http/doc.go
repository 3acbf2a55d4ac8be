// Package http implements the REST transport of the service.
//
// It wires the /api/v1 routes, decodes request bodies, resolves the caller
// from the session token and enforces the role guard before a request is
// handed to the service layer. Request tracing, access logging, request
// metrics and response compression are middleware of this package.
package http
