package minihttp

import (
	"bufio"
	stderrors "errors"
	"io"
	"net"
	stdhttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/indigo-web/minihttp/errors"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/router/inbuilt"
	"github.com/indigo-web/minihttp/router/inbuilt/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testRequestBody = "Hello, world!"

type message struct {
	Text string `json:"text"`
}

func getRouter() *inbuilt.Router {
	return inbuilt.NewRouter().
		Use(middleware.CORS()).
		Get("/simple-get", func(request *http.Request) *http.Response {
			return http.OK([]byte("<h1>Hi</h1>"), mime.HTML)
		}).
		Get("/with-header", func(request *http.Request) *http.Response {
			return http.OK(request.Header("x-hello"), mime.Plain)
		}).
		Post("/read-body", func(request *http.Request) *http.Response {
			return http.OK(request.Body, mime.OctetStream)
		}).
		Post("/json", func(request *http.Request) *http.Response {
			var msg message
			if err := request.JSON(&msg); err != nil {
				return http.BadRequest()
			}

			return http.JSON(message{Text: strings.ToUpper(msg.Text)})
		})
}

func TestApp(t *testing.T) {
	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := sock.Addr().String()
	URL := "http://" + addr

	started, stopped := make(chan struct{}), make(chan struct{})
	app := New(addr).
		Logger(zerolog.Nop()).
		NotifyOnStart(func() {
			close(started)
		}).
		NotifyOnStop(func() {
			close(stopped)
		})

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.ServeListener(sock, getRouter())
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "server didn't start")
	}

	client := &stdhttp.Client{
		Transport: &stdhttp.Transport{DisableKeepAlives: true},
		Timeout:   5 * time.Second,
	}

	t.Run("simple get", func(t *testing.T) {
		resp, err := client.Get(URL + "/simple-get")
		require.NoError(t, err)
		defer func() {
			_ = resp.Body.Close()
		}()

		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, "200 OK", resp.Status)
		require.Equal(t, "HTTP/1.1", resp.Proto)
		require.Equal(t, "text/html", resp.Header.Get("Content-Type"))
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "<h1>Hi</h1>", string(body))
	})

	t.Run("header", func(t *testing.T) {
		request, err := stdhttp.NewRequest(stdhttp.MethodGet, URL+"/with-header", nil)
		require.NoError(t, err)
		request.Header.Set("X-Hello", "World!")

		resp, err := client.Do(request)
		require.NoError(t, err)
		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "World!", string(body))
	})

	t.Run("read body", func(t *testing.T) {
		resp, err := client.Post(URL+"/read-body", mime.Plain, strings.NewReader(testRequestBody))
		require.NoError(t, err)
		defer func() {
			_ = resp.Body.Close()
		}()

		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, testRequestBody, string(body))
	})

	t.Run("json", func(t *testing.T) {
		resp, err := client.Post(URL+"/json", mime.JSON, strings.NewReader(`{"text":"hello"}`))
		require.NoError(t, err)
		defer func() {
			_ = resp.Body.Close()
		}()

		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.Equal(t, mime.JSON, resp.Header.Get("Content-Type"))
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"text":"HELLO"}`, string(body))
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := client.Get(URL + "/nowhere")
		require.NoError(t, err)
		defer func() {
			_ = resp.Body.Close()
		}()

		require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
		require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("malformed request", func(t *testing.T) {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		defer func() {
			_ = conn.Close()
		}()

		_, err = conn.Write([]byte("GET / HTTP/1.1\r\nno colon here\r\n\r\n"))
		require.NoError(t, err)

		resp, err := stdhttp.ReadResponse(bufio.NewReader(conn), nil)
		require.NoError(t, err)
		require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "<h1>400 Bad Request</h1>", string(body))
	})

	t.Run("connection is closed after the response", func(t *testing.T) {
		conn, err := net.Dial("tcp", addr)
		require.NoError(t, err)
		defer func() {
			_ = conn.Close()
		}()

		_, err = conn.Write([]byte("GET /simple-get HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(string(data), "HTTP/1.1 200 OK\r\n"))
		require.True(t, strings.HasSuffix(string(data), "\r\n\r\n<h1>Hi</h1>"))
	})

	require.NoError(t, app.Stop())

	select {
	case err := <-serveErr:
		require.True(t, stderrors.Is(err, errors.ErrShutdown))
	case <-time.After(5 * time.Second):
		require.FailNow(t, "server is not shutting down for too long")
	}

	select {
	case <-stopped:
	default:
		require.Fail(t, "stop hook wasn't called")
	}
}

func TestApp_BadAddr(t *testing.T) {
	require.Panics(t, func() {
		New("localhost")
	})
}

func TestApp_StopBeforeServe(t *testing.T) {
	app := New(":0")
	require.NoError(t, app.Stop())
	require.NoError(t, app.GracefulStop())
}
