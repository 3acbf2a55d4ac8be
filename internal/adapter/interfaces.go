// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound collaborators of the service: the
// [Mailer] that delivers password reset links and the [ImageUploader] that
// stores blog images in S3-compatible object storage.
//
// Both calls are synchronous. Callers get an error back and decide how to
// recover; nothing is queued or retried in the background.
package adapter

import (
	"context"

	"github.com/MKhiriev/inkloth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers a plain-text email.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// ImageUploader stores an image and returns the reference under which it can
// be fetched publicly.
type ImageUploader interface {
	Upload(ctx context.Context, file models.ImageFile) (models.Image, error)
}
