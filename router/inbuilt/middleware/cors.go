package middleware

import (
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/router/inbuilt"
)

const DefaultAllowedOrigin = "*"

// CORS sets the Access-Control-Allow-Origin header on every response. Without origins
// passed, any origin is allowed. Multiple origins result in the one matching the
// request's Origin header being echoed back, if any
func CORS(origins ...string) inbuilt.Middleware {
	if len(origins) == 0 {
		origins = []string{DefaultAllowedOrigin}
	}

	return func(next inbuilt.Handler, request *http.Request) *http.Response {
		response := next(request)

		if len(origins) == 1 {
			return response.Header("Access-Control-Allow-Origin", origins[0])
		}

		origin := request.Headers.Value("origin")
		for _, allowed := range origins {
			if allowed == origin {
				return response.
					Header("Access-Control-Allow-Origin", origin).
					Header("Vary", "Origin")
			}
		}

		return response
	}
}
