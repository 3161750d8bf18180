package middleware

import (
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/router/inbuilt"
	"github.com/rs/zerolog/log"
)

// Logger is satisfied by *log.Logger from the standard library as well as by
// *zerolog.Logger
type Logger interface {
	Printf(format string, v ...any)
}

// LogRequests logs every request along with the response it got. If no loggers are
// passed, the global zerolog logger is used
func LogRequests(loggers ...Logger) inbuilt.Middleware {
	if len(loggers) == 0 {
		loggers = append(loggers, &log.Logger)
	}

	return func(next inbuilt.Handler, request *http.Request) *http.Response {
		response := next(request)

		for _, logger := range loggers {
			logger.Printf(
				"%s %s -> %d %s",
				request.Method, request.Path, response.Code, response.Status,
			)
		}

		return response
	}
}
