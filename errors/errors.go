package errors

import (
	"errors"
)

// Parse failures. Every one of them is produced either by the http1 scanner or by
// the adaptation of a scanned request into an owned one
var (
	ErrPartial        = errors.New("incomplete request")
	ErrInvalidMethod  = errors.New("invalid request method")
	ErrInvalidPath    = errors.New("invalid request path")
	ErrInvalidVersion = errors.New("invalid protocol version")
	ErrInvalidHeader  = errors.New("malformed header line")
	ErrTooManyHeaders = errors.New("too many headers")
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNotFound             = errors.New("not found")
	ErrShutdown             = errors.New("graceful shutdown")
)
