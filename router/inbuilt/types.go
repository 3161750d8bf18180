package inbuilt

import (
	"github.com/indigo-web/minihttp/http"
)

type (
	Handler      func(request *http.Request) *http.Response
	ErrorHandler func(err error) *http.Response
)

// Middleware works like a chain of nested calls, next may be even directly
// handler. But if we are not a closing middleware, we will call next
// middleware that is simply a partial middleware with already provided next
type Middleware func(next Handler, request *http.Request) *http.Response
