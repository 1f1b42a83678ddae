// Package common defines sentinel errors shared across the portfolio
// backend layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors surfaced as 400s at the HTTP boundary.
	ErrNameRequired   = errors.New("name is required")
	ErrImageRequired  = errors.New("image is required")
	ErrAlbumNotFound  = errors.New("album not found")
	ErrMissingAlbumID = errors.New("album id is required")

	// Upload errors.
	ErrUnsupportedFileType = errors.New("only image files are allowed")
	ErrFileTooLarge        = errors.New("file too large")
)
