// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// applyDefaults fills fields left zero by every configuration source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.CookieExpire == 0 {
		cfg.App.CookieExpire = cfg.App.TokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = DefaultResetTokenTTL
	}
	cfg.App.PublicBaseURL = strings.TrimRight(cfg.App.PublicBaseURL, "/")

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Storage.DB.ConnectAttempts == 0 {
		cfg.Storage.DB.ConnectAttempts = DefaultConnectAttempts
	}

	if cfg.Adapter.Mail.Driver == "" {
		cfg.Adapter.Mail.Driver = DefaultMailDriver
	}
	if cfg.Adapter.Mail.SMTPPort == 0 {
		cfg.Adapter.Mail.SMTPPort = DefaultSMTPPort
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.S3.PublicURL == "" && cfg.Adapter.S3.Endpoint != "" && cfg.Adapter.S3.Bucket != "" {
		cfg.Adapter.S3.PublicURL = strings.TrimRight(cfg.Adapter.S3.Endpoint, "/") + "/" + cfg.Adapter.S3.Bucket
	}

	if cfg.Workers.HashConcurrency == 0 {
		cfg.Workers.HashConcurrency = runtime.NumCPU()
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.CookieExpire < 0 || cfg.App.ResetTokenTTL < 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in range %d-%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Adapter.Mail.Driver {
	case MailDriverSMTP:
		if cfg.Adapter.Mail.SMTPHost == "" {
			return fmt.Errorf("%w: smtp host is required", ErrInvalidAdapterConfigs)
		}
	case MailDriverHTTP:
		if cfg.Adapter.Mail.RelayURL == "" {
			return fmt.Errorf("%w: mail relay url is required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mail driver %q", ErrInvalidAdapterConfigs, cfg.Adapter.Mail.Driver)
	}
	if cfg.Adapter.S3.Bucket == "" || cfg.Adapter.S3.Region == "" {
		return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.HashConcurrency < 0 {
		return fmt.Errorf("%w: hash concurrency must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
