package inbuilt

import (
	stderrors "errors"
	"fmt"

	"github.com/indigo-web/minihttp/errors"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/router"
)

var _ router.Router = new(Router)

// Router is a static routing table: every route is an exact pair of a method and a path.
// There are no dynamic segments, no groups and no wildcards. Requests matching no route
// are answered by the error handler with errors.ErrNotFound, wrapped into the middlewares
// as any other handler
type Router struct {
	routes      [method.Count + 1]map[string]Handler
	middlewares []Middleware
	errHandler  ErrorHandler
}

// NewRouter constructs a new instance of inbuilt router
func NewRouter() *Router {
	return &Router{
		errHandler: defaultErrorHandler,
	}
}

// Route registers the handler for the exact method and path. Registering the same pair
// twice panics
func (r *Router) Route(m method.Method, path string, handler Handler) *Router {
	if m == method.Unknown || m > method.Count {
		panic(fmt.Sprintf("inbuilt: cannot route an unknown method: %d", m))
	}

	if r.routes[m] == nil {
		r.routes[m] = make(map[string]Handler)
	}

	if _, found := r.routes[m][path]; found {
		panic(fmt.Sprintf("inbuilt: route %s %s is already registered", m, path))
	}

	r.routes[m][path] = handler

	return r
}

// Use adds middlewares applied to every request, including unmatched ones. The first
// middleware ever added is the outermost one
func (r *Router) Use(middlewares ...Middleware) *Router {
	r.middlewares = append(r.middlewares, middlewares...)
	return r
}

// SetErrorHandler replaces the handler called for malformed requests and for the
// requests that don't match any route
func (r *Router) SetErrorHandler(handler ErrorHandler) *Router {
	r.errHandler = handler
	return r
}

// OnRequest looks the handler up and calls it through the middlewares chain. A nil
// response from the handler is replaced with 204 No Content before any middleware sees it
func (r *Router) OnRequest(request *http.Request) *http.Response {
	return compose(noContentIfNil(r.lookup(request)), r.middlewares)(request)
}

// OnError is called when the request couldn't be parsed. Middlewares aren't applied,
// as there's no request to pass
func (r *Router) OnError(err error) *http.Response {
	if response := r.errHandler(err); response != nil {
		return response
	}

	return http.NoContent()
}

func (r *Router) lookup(request *http.Request) Handler {
	if request.Method <= method.Count {
		if handler, found := r.routes[request.Method][request.Path]; found {
			return handler
		}
	}

	return func(*http.Request) *http.Response {
		return r.errHandler(errors.ErrNotFound)
	}
}

func noContentIfNil(handler Handler) Handler {
	return func(request *http.Request) *http.Response {
		if response := handler(request); response != nil {
			return response
		}

		return http.NoContent()
	}
}

func compose(handler Handler, middlewares []Middleware) Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		mware, next := middlewares[i], handler
		handler = func(request *http.Request) *http.Response {
			return mware(next, request)
		}
	}

	return handler
}

func defaultErrorHandler(err error) *http.Response {
	if stderrors.Is(err, errors.ErrNotFound) {
		return http.NotFound()
	}

	return http.BadRequest()
}
