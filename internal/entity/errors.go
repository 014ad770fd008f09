package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Chat errors
	ErrInvalidRole       = fmt.Errorf("%w: message role", ErrInvalidParameter)
	ErrContentTooLong    = errors.New("message content too long")
	ErrTooManySources    = errors.New("too many sources")
	ErrInvalidHighlight  = fmt.Errorf("%w: highlight index", ErrInvalidParameter)
	ErrInvalidFormat     = fmt.Errorf("%w: format", ErrInvalidParameter)
	ErrFormatUnavailable = errors.New("export format unavailable")

	// Reference errors
	ErrInvalidMetadata = errors.New("invalid document metadata")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
