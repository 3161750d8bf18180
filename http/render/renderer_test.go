package render

import (
	"bufio"
	"bytes"
	"io"
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/stretchr/testify/require"
)

func readResponse(t *testing.T, data []byte) (*stdhttp.Response, []byte) {
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, body
}

// headerLines returns every line between the response line and the blank line
func headerLines(data []byte) []string {
	head, _, _ := strings.Cut(string(data), "\r\n\r\n")
	lines := strings.Split(head, "\r\n")

	return lines[1:]
}

func TestEncode(t *testing.T) {
	t.Run("OK with body", func(t *testing.T) {
		data := Encode(http.OK([]byte("Hello, world!"), mime.Plain))
		require.True(t, bytes.HasPrefix(data, []byte("HTTP/1.1 200 OK\r\n")))
		require.True(t, bytes.HasSuffix(data, []byte("\r\n\r\nHello, world!")))

		resp, body := readResponse(t, data)
		require.Equal(t, 200, resp.StatusCode)
		require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		require.Equal(t, int64(13), resp.ContentLength)
		require.Equal(t, "Hello, world!", string(body))
	})

	t.Run("no body", func(t *testing.T) {
		data := Encode(http.NoContent())
		require.Equal(t, "HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n", string(data))
	})

	t.Run("empty non-nil body", func(t *testing.T) {
		data := Encode(http.NewResponse(status.OK, "OK", []byte{}))
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n", string(data))
	})

	t.Run("headers in any order", func(t *testing.T) {
		response := http.NotFound().
			Header("Access-Control-Allow-Origin", "*").
			Header("X-Custom", "some value")
		data := Encode(response)

		require.True(t, bytes.HasPrefix(data, []byte("HTTP/1.1 404 Not Found\r\n")))
		require.ElementsMatch(t, []string{
			"Content-Type: text/html",
			"Access-Control-Allow-Origin: *",
			"X-Custom: some value",
			"Content-Length: 22",
		}, headerLines(data))

		resp, body := readResponse(t, data)
		require.Equal(t, 404, resp.StatusCode)
		require.Equal(t, "<h1>404 Not Found</h1>", string(body))
	})

	t.Run("content length is last header", func(t *testing.T) {
		data := Encode(http.BadRequest())
		lines := headerLines(data)
		require.Equal(t, "Content-Length: 24", lines[len(lines)-1])
	})

	t.Run("caller-set content length is duplicated", func(t *testing.T) {
		response := http.OK([]byte("hello"), mime.Plain).Header("Content-Length", "999")
		data := Encode(response)

		require.Equal(t, 2, bytes.Count(data, []byte("Content-Length: ")))
		require.Contains(t, headerLines(data), "Content-Length: 999")
		require.Contains(t, headerLines(data), "Content-Length: 5")
	})

	t.Run("empty status text falls back to the known one", func(t *testing.T) {
		data := Encode(http.NewResponse(status.Teapot, "", nil))
		require.True(t, bytes.HasPrefix(data, []byte("HTTP/1.1 418 I'm a teapot\r\n")))
	})

	t.Run("custom status text", func(t *testing.T) {
		data := Encode(http.NewResponse(299, "Fine Enough", nil))
		require.True(t, bytes.HasPrefix(data, []byte("HTTP/1.1 299 Fine Enough\r\n")))
	})

	t.Run("binary body", func(t *testing.T) {
		body := []byte{0, '\r', '\n', 0xff, 0}
		data := Encode(http.OK(body, mime.OctetStream))
		require.True(t, bytes.HasSuffix(data, append([]byte("Content-Length: 5\r\n\r\n"), body...)))
	})
}

func TestRenderer_Reuse(t *testing.T) {
	renderer := NewRenderer(make([]byte, 0, 16))

	first := string(renderer.Render(http.OK([]byte("a rather long body to grow the buffer"), mime.Plain)))
	require.Contains(t, first, "Content-Length: 37\r\n")

	second := string(renderer.Render(http.NoContent()))
	require.Equal(t, "HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n", second)
}
