package render

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidFormatName = errors.New("invalid format name")
	ErrUnknownFormat     = errors.New("unknown format")
	ErrFieldMismatch     = errors.New("field mismatch")
	ErrNotSerializable   = errors.New("value not serializable")
	ErrInvalidTemplate   = errors.New("invalid template")
)
