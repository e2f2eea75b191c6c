// Package router registra as rotas da API sobre o httprouter, respondendo rotas e métodos
// desconhecidos no mesmo formato de erro dos handlers.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/auction-sales-report/pkg/apiErrors"
)

// Route descreve um endpoint. Middlewares rodam na ordem declarada, antes do Handler.
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type Router struct {
	router *httprouter.Router
	routes []Route
}

type Option func(router *Router)

// WithRoutes registra um grupo de rotas, como o devolvido por handler.Report
func WithRoutes(routes ...Route) Option {
	return func(router *Router) {
		router.Add(routes...)
	}
}

func New(opts ...Option) *Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", r.URL.Path)
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", r.Method)
	})

	router := &Router{router: hr}
	for _, opt := range opts {
		opt(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) Add(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
		r.routes = append(r.routes, route)
	}
}

// Routes devolve "MÉTODO caminho" de cada rota registrada, na ordem de registro
func (r *Router) Routes() []string {
	out := make([]string, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route.Method+" "+route.Path)
	}
	return out
}
