// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// Each Validator handles a family of models and dispatches on the dynamic
// type of the value. Optional field names restrict validation to a subset of
// rules; without them every rule for the type is applied.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
