package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"reactor-staging/internal/handlers"
	"reactor-staging/internal/observability"
	"reactor-staging/internal/reactor"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	reactor.RegisterRoutes(r)

	return r
}
