package api

import (
	"github.com/lasville/giustizia/internal/config"
	"github.com/lasville/giustizia/internal/infrastructure"
	"github.com/lasville/giustizia/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Auth       config.AuthConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Auth:       cfg.Auth,
		Pagination: cfg.API.Pagination,
	}
}
