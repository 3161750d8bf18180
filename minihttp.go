package minihttp

import (
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/indigo-web/minihttp/internal/address"
	"github.com/indigo-web/minihttp/internal/server/http"
	"github.com/indigo-web/minihttp/internal/server/tcp"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/router/inbuilt"
	"github.com/indigo-web/minihttp/settings"
	"github.com/rs/zerolog"
)

// App binds a router to a listening socket. Every accepted connection serves exactly
// one request and is closed afterwards
type App struct {
	addr     address.Address
	settings settings.Settings
	logger   zerolog.Logger
	hooks    hooks

	mu     sync.Mutex
	server *tcp.Server
}

// New returns a new App instance. Panics if the address is malformed
func New(addr string) *App {
	appAddr, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("minihttp: bad addr: %w", err))
	}

	return &App{
		addr:     appAddr,
		settings: settings.Default(),
		logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// Tune replaces default settings. Zero values are filled with defaults
func (a *App) Tune(s settings.Settings) *App {
	a.settings = settings.Fill(s)
	return a
}

// Logger replaces the logger used for the server's own events. Handlers and middlewares
// are free to use their own loggers
func (a *App) Logger(logger zerolog.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback right before the server starts accepting connections
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the server is down. At that moment no new
// connections are accepted and all the clients are already processed
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve listens on the address the App was created with and serves the router. If nil
// is passed instead of a router, an empty inbuilt one is used, responding 404 to everything
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.addr.String())
	if err != nil {
		return fmt.Errorf("minihttp: listen: %w", err)
	}

	return a.ServeListener(sock, r)
}

// ServeListener serves the router on an already opened listener, which is closed on
// return. It blocks until the listener fails or the App is stopped, in the latter
// case errors.ErrShutdown is returned
func (a *App) ServeListener(sock net.Listener, r router.Router) error {
	if r == nil {
		r = inbuilt.NewRouter()
	}

	httpServer := http.NewServer(r, a.settings, a.logger)
	server := tcp.NewServer(sock, func(conn net.Conn) {
		httpServer.Run(tcp.NewClient(conn, a.settings.TCP.ReadTimeout, a.settings.TCP.WriteTimeout))
	})

	a.mu.Lock()
	a.server = server
	a.mu.Unlock()

	a.logger.Info().Stringer("addr", sock.Addr()).Msg("listening")
	callIfNotNil(a.hooks.OnStart)
	err := server.Start()
	callIfNotNil(a.hooks.OnStop)
	a.logger.Info().Err(err).Msg("stopped")

	return err
}

// Stop closes the listener and all the live connections.
//
// NOTE: the call isn't blocking, Serve returns only after every connection's goroutine
// is finished
func (a *App) Stop() error {
	server := a.current()
	if server == nil {
		return nil
	}

	return server.Stop()
}

// GracefulStop stops accepting new connections, but lets the already accepted ones
// to be served till the end
func (a *App) GracefulStop() error {
	server := a.current()
	if server == nil {
		return nil
	}

	return server.GracefulShutdown()
}

func (a *App) current() *tcp.Server {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.server
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
