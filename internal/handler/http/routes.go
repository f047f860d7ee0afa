package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	routeSessionCreate         = "/api/session/create"
	routeSessionGet            = "/api/session/get"
	routeSessionDelete         = "/api/session/delete"
	routeSessionRefresh        = "/api/session/refresh"
	routeSessionStatus         = "/api/session/status"
	routeSessionTestConnection = "/api/session/test-connection"

	routeVersion      = "/api/version"
	routeAppData      = "/api/app-data"
	routeLoginSuccess = "/api/hooks/login-success"
	routeMetrics      = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post(routeSessionCreate, serveSession(h.sessions.Create))
	router.Post(routeSessionGet, serveSession(h.sessions.Get))
	router.Post(routeSessionDelete, serveSession(h.sessions.Delete))
	router.Post(routeSessionRefresh, serveSession(h.sessions.Refresh))
	router.Post(routeSessionStatus, serveSession(h.sessions.Status))
	router.Get(routeSessionTestConnection, serveSession(h.sessions.TestConnection))
	router.Post(routeSessionTestConnection, serveSession(h.sessions.TestConnection))

	router.Get(routeVersion, h.getServerVersion)
	router.Get(routeAppData, h.filterAppData)
	router.Post(routeLoginSuccess, h.loginSuccess)

	if h.gatherer != nil {
		router.Method(http.MethodGet, routeMetrics, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
