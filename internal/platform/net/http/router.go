package http

import "net/http"

// Handler is the platform handler signature every route uses
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the small routing surface modules mount against.
// Keeping it an interface hides chi from service code.
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
