package render

import (
	"strconv"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
)

const (
	protocol      = "HTTP/1.1 "
	contentLength = "Content-Length: "
	colonsp       = ": "
	crlf          = "\r\n"
)

// Renderer serializes responses into its own buffer, which is reused between calls.
// The whole response is materialized at once, there's no streaming. A Renderer must
// not be shared between goroutines
type Renderer struct {
	buff []byte
}

func NewRenderer(buff []byte) *Renderer {
	return &Renderer{
		buff: buff[:0],
	}
}

// Render returns the response in its wire form. The returned slice is valid only until
// the next call to Render.
//
// Content-Length is always appended and computed from the actual body length, even if the
// response already contains one. In that case there will be two Content-Length headers
func (r *Renderer) Render(response *http.Response) []byte {
	r.buff = r.buff[:0]
	r.renderResponseLine(response)

	for key, value := range response.Headers {
		r.renderHeader(key, value)
	}

	r.renderContentLength(len(response.Body))
	r.crlf()
	r.buff = append(r.buff, response.Body...)

	return r.buff
}

// Encode renders the response into a newly allocated slice
func Encode(response *http.Response) []byte {
	size := len(protocol) + len(response.Status) + len(response.Body) + 64
	for key, value := range response.Headers {
		size += len(key) + len(colonsp) + len(value) + len(crlf)
	}

	return NewRenderer(make([]byte, 0, size)).Render(response)
}

func (r *Renderer) renderResponseLine(response *http.Response) {
	text := response.Status
	if len(text) == 0 {
		text = status.Text(response.Code)
	}

	r.buff = append(r.buff, protocol...)
	r.buff = strconv.AppendUint(r.buff, uint64(response.Code), 10)
	r.sp()
	r.buff = append(r.buff, text...)
	r.crlf()
}

func (r *Renderer) renderHeader(key, value string) {
	r.buff = append(r.buff, key...)
	r.buff = append(r.buff, colonsp...)
	r.buff = append(r.buff, value...)
	r.crlf()
}

func (r *Renderer) renderContentLength(value int) {
	r.buff = strconv.AppendInt(append(r.buff, contentLength...), int64(value), 10)
	r.crlf()
}

func (r *Renderer) sp() {
	r.buff = append(r.buff, ' ')
}

func (r *Renderer) crlf() {
	r.buff = append(r.buff, crlf...)
}
