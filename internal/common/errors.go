// Package common defines shared constants and sentinel errors used across
// client and server layers of AccountKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// ErrStorageUnavailable wraps any relational store or cache I/O failure.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrExhaustedRetries means identifier generation hit its attempt ceiling.
	// It signals capacity exhaustion and should page someone, not be retried.
	ErrExhaustedRetries = errors.New("exhausted retries")

	// Login errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("rate limited")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// One-time code errors.
	ErrInvalidCode = errors.New("invalid or expired code")

	// Wallet errors.
	ErrWalletLimitExceeded = errors.New("wallet limit exceeded")
)
