package http

import (
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const (
	notFoundBody   = "<h1>404 Not Found</h1>"
	badRequestBody = "<h1>400 Bad Request</h1>"
)

// Response is a complete response, which is rendered at once. Headers are unordered.
// Body is optional: a nil Body means no body at all, in this case Content-Length
// is rendered as 0 anyway.
//
// Content-Length is always computed by the renderer from the actual body, so setting
// it manually results in the header being duplicated
type Response struct {
	Code    status.Code
	Status  status.Status
	Headers map[string]string
	Body    []byte
}

// NewResponse returns a response with the code, status text and the body. Body may be
// nil, meaning the response has no body
func NewResponse(code status.Code, text status.Status, body []byte) *Response {
	return &Response{
		Code:    code,
		Status:  text,
		Headers: make(map[string]string),
		Body:    body,
	}
}

// OK returns a 200 OK response with the body and the Content-Type set
func OK(body []byte, contentType mime.MIME) *Response {
	return NewResponse(status.OK, status.Text(status.OK), body).
		Header("Content-Type", contentType)
}

// NotFound returns a 404 Not Found response with a short html body
func NotFound() *Response {
	return NewResponse(status.NotFound, status.Text(status.NotFound), []byte(notFoundBody)).
		Header("Content-Type", mime.HTML)
}

// BadRequest returns a 400 Bad Request response with a short html body
func BadRequest() *Response {
	return NewResponse(status.BadRequest, status.Text(status.BadRequest), []byte(badRequestBody)).
		Header("Content-Type", mime.HTML)
}

// NoContent returns a 204 No Content response without a body
func NoContent() *Response {
	return NewResponse(status.NoContent, status.Text(status.NoContent), nil)
}

// JSON returns a 200 OK response with the model serialized by json-iterator. If the
// model can't be serialized, 500 Internal Server Error with the error text is returned
func JSON(model any) *Response {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(model)
	if err := stream.Error; err != nil {
		return NewResponse(
			status.InternalServerError, status.Text(status.InternalServerError), []byte(err.Error()),
		).Header("Content-Type", mime.Plain)
	}

	// the stream's buffer is going to be reused, so it must be copied
	return OK(append([]byte(nil), stream.Buffer()...), mime.JSON)
}

// Header sets the header, overriding the previous value of the exact same key
func (r *Response) Header(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}

	r.Headers[key] = value
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.Body = body
	return r
}
