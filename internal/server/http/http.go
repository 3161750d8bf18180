package http

import (
	stderrors "errors"
	"io"

	"github.com/indigo-web/minihttp/errors"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/parser/http1"
	"github.com/indigo-web/minihttp/http/render"
	"github.com/indigo-web/minihttp/internal/server/tcp"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/settings"
	"github.com/rs/zerolog"
)

// Server handles exactly one request per connection: it reads until the request is
// complete, passes it to the router, writes the response back and closes the connection.
//
// The parser keeps no state between calls, so every time new data arrives, the whole
// accumulated buffer is parsed from the very beginning. A request must fit into the
// buffer entirely, otherwise it's rejected.
type Server struct {
	router   router.Router
	settings settings.Settings
	logger   zerolog.Logger
}

func NewServer(r router.Router, s settings.Settings, logger zerolog.Logger) *Server {
	return &Server{
		router:   r,
		settings: s,
		logger:   logger,
	}
}

func (s *Server) Run(client tcp.Client) {
	defer func() {
		if err := client.Close(); err != nil {
			s.logger.Debug().Err(err).Stringer("remote", client.Remote()).Msg("closing connection")
		}
	}()

	buff := make([]byte, s.settings.TCP.ReadBufferSize)
	storage := make([]http1.Header, s.settings.Headers.Number)

	response, ok := s.HandleRequest(client, buff, storage)
	if !ok {
		return
	}

	// at this point the request is either owned or never existed, so the read buffer
	// is free to be reused
	data := render.NewRenderer(buff).Render(response)
	if err := client.Write(data); err != nil {
		s.logger.Error().Err(err).Stringer("remote", client.Remote()).Msg("writing response")
	}
}

// HandleRequest reads the request into the buff and returns the response to it. False
// is returned if the client has gone before sending anything, so there's no one to
// respond to
func (s *Server) HandleRequest(
	client tcp.Client, buff []byte, storage []http1.Header,
) (response *http.Response, ok bool) {
	var filled int

	for {
		n, err := client.Read(buff[filled:])
		filled += n

		if n > 0 {
			request, _, perr := http1.Parse(buff[:filled], storage)
			switch {
			case perr == nil:
				return s.onRequest(request), true
			case !stderrors.Is(perr, errors.ErrPartial):
				return s.onError(client, perr), true
			case filled == len(buff):
				// the request doesn't fit into the buffer, so it will never be complete
				return s.onError(client, perr), true
			}
		}

		if err != nil {
			if filled == 0 {
				if !stderrors.Is(err, io.EOF) {
					s.logger.Debug().Err(err).Stringer("remote", client.Remote()).Msg("reading request")
				}

				return nil, false
			}

			return s.onError(client, errors.ErrPartial), true
		}
	}
}

func (s *Server) onRequest(borrowed http1.Request) *http.Response {
	request, err := http.FromBorrowed(borrowed)
	if err != nil {
		return notNil(s.router.OnError(err))
	}

	return notNil(s.router.OnRequest(request))
}

func (s *Server) onError(client tcp.Client, err error) *http.Response {
	s.logger.Debug().Err(err).Stringer("remote", client.Remote()).Msg("malformed request")

	return notNil(s.router.OnError(err))
}

func notNil(resp *http.Response) *http.Response {
	if resp != nil {
		return resp
	}

	return http.NoContent()
}
