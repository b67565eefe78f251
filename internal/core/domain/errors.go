package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrParse is the root of every platform descriptor and predicate parse failure.
	ErrParse = zerr.New("parse error")

	// ErrInvalidRequest is returned when a resolve request fails validation.
	ErrInvalidRequest = zerr.New("invalid resolve request")

	// ErrInvalidConfig is returned when nixcrate.yaml fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoRootPackages is returned when neither roots nor initial requests name a package.
	ErrNoRootPackages = zerr.New("no root packages")

	// ErrUnknownRoot is returned when a root package is missing from the package set.
	ErrUnknownRoot = zerr.New("unknown root package")

	// ErrChecksumFailed is returned when a source checksum cannot be computed or normalized.
	ErrChecksumFailed = zerr.New("failed to compute checksum")

	// ErrMissingRevision is returned when a git source carries no revision to prefetch.
	ErrMissingRevision = zerr.New("git source has no revision")

	// ErrVersionIncompatible is returned when an existing plan was written by a newer nixcrate.
	ErrVersionIncompatible = zerr.New("plan was generated by an incompatible version")

	// ErrUnsupportedFormat is returned for an output format other than json or yaml.
	ErrUnsupportedFormat = zerr.New("unsupported output format")
)

// ParseError describes a malformed input. It matches ErrParse under errors.Is
// and exposes the underlying cause to errors.As.
type ParseError struct {
	// Subject names what was being parsed, e.g. a predicate or a file path.
	Subject string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Subject, e.Err)
}

// Unwrap matches both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// WithCause joins a sentinel with its cause so that errors.Is matches both.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
