package router

import (
	"github.com/indigo-web/minihttp/http"
)

// Router is the only thing the server knows about the application. OnRequest is called
// for every successfully parsed request, OnError for those which were not
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(err error) *http.Response
}
