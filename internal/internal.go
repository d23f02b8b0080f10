package internal

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/syrilster/personio-absence-kit/internal/auth"
	"github.com/syrilster/personio-absence-kit/internal/config"
	"github.com/syrilster/personio-absence-kit/internal/middlewares"
	"github.com/syrilster/personio-absence-kit/internal/notify"
	"github.com/syrilster/personio-absence-kit/internal/tokenstore"
)

// StatusRoute health check route
func StatusRoute() (route config.Route) {
	route = config.Route{
		Path:    "/health",
		Method:  http.MethodGet,
		Handler: middlewares.RuntimeHealthCheck(),
	}
	return route
}

func MetricsRoute(store *tokenstore.Store) config.Route {
	reg := prometheus.NewRegistry()
	reg.MustRegister(middlewares.NewTokenCollector(store))
	return config.Route{
		Path:    "/metrics",
		Method:  http.MethodGet,
		Handler: middlewares.MetricsHandler(reg),
	}
}

type ServerConfig interface {
	Version() string
	PersonioAPIURI() string
	TokenStore() *tokenstore.Store
	XlsFileLocation() string
	ReportFileLocation() string
	Mailer() *notify.Mailer
}

func SetupServer(cfg ServerConfig) *config.Server {
	basePath := fmt.Sprintf("/%v", cfg.Version())
	service := NewService(cfg.Mailer(), cfg.ReportFileLocation())
	authService := auth.NewAuthService(cfg.TokenStore(), cfg.PersonioAPIURI())
	server := config.NewServer().
		WithRoutes(
			"", StatusRoute(), MetricsRoute(cfg.TokenStore()),
		).
		WithRoutes(
			basePath,
			append(auth.Routes(authService), Route(service, cfg.XlsFileLocation()))...,
		)
	return server
}
