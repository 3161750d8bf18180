package http

import (
	"bytes"
	"strings"

	"github.com/indigo-web/minihttp/errors"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/parser/http1"
	json "github.com/json-iterator/go"
)

// Request is an owned request. All of its fields have their own storage, so it
// stays valid after the buffer it was parsed from is reused.
//
// Headers keep only a single value per name: if the same (case-insensitively) header
// occurs multiple times, only the last one is kept
type Request struct {
	Method  method.Method
	Path    string
	Version string
	Headers headers.Headers
	Body    []byte
}

// FromBorrowed converts the request view returned by http1.Parse into the owned
// request. The method must be one of the method.List, otherwise errors.ErrInvalidMethod
// is returned
func FromBorrowed(borrowed http1.Request) (*Request, error) {
	m := method.Parse(borrowed.Method)
	if m == method.Unknown {
		return nil, errors.ErrInvalidMethod
	}

	hdrs := headers.NewHeaders(len(borrowed.Headers))
	for _, header := range borrowed.Headers {
		// strings.ToLower returns the very same string if nothing was changed, so
		// it still may point into the buffer
		hdrs[strings.Clone(strings.ToLower(header.Name))] = bytes.Clone(header.Value)
	}

	return &Request{
		Method:  m,
		Path:    strings.Clone(borrowed.Path),
		Version: strings.Clone(borrowed.Version),
		Headers: hdrs,
		Body:    bytes.Clone(borrowed.Body),
	}, nil
}

// Header returns a value of the header (case-insensitively), or nil if there's no such
func (r *Request) Header(name string) []byte {
	return r.Headers.Get(name)
}

// JSON decodes the request's body into the model. Requests with Content-Type incompatible
// with mime.JSON are rejected, however an absent Content-Type is fine
func (r *Request) JSON(model any) error {
	if !mime.Complies(mime.JSON, r.Headers.Value("content-type")) {
		return errors.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
