package chain

import "errors"

var (
	// ErrMissingToken request payload has no authentication token
	ErrMissingToken = errors.New("missing authentication token")

	// ErrMissingData request payload has no data
	ErrMissingData = errors.New("missing data")

	// ErrNoHandlers pipeline was assembled without handlers
	ErrNoHandlers = errors.New("no handlers")

	// ErrUnknownKind handler kind is not one of the known variants
	ErrUnknownKind = errors.New("unknown handler kind")

	// ErrDuplicateKind handler kind appears more than once in an assembly
	ErrDuplicateKind = errors.New("duplicate handler kind")

	// ErrHandlerNil head handler is nil
	ErrHandlerNil = errors.New("handler is nil")
)
