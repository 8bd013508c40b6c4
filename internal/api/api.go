// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/lasville/giustizia/internal/config"
	"github.com/lasville/giustizia/internal/infrastructure"
	"github.com/lasville/giustizia/pkg/middleware"
	"github.com/lasville/giustizia/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Every route behind the module requires a verified session; permission
// gates are applied per route group.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	if err := domain.Auth.Start(infra.Lifecycle); err != nil {
		return nil, fmt.Errorf("auth start failed: %w", err)
	}
	if err := domain.Realtime.Start(infra.Lifecycle); err != nil {
		return nil, fmt.Errorf("realtime start failed: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(domain.Auth.Middleware())

	return m, nil
}
