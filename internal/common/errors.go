// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// A request that fails server-side validation.
	ErrorInvalidRequest = errors.New("invalid request")

	// A profile record that came back without a server-assigned identifier.
	ErrorNotPersisted = errors.New("record not persisted")
)

// DocumentFieldName is the multipart form field carrying uploaded image
// bytes on every image endpoint.
const DocumentFieldName = "document"
