package api

import (
	"net/http"

	"github.com/lasville/giustizia/internal/auth"
	"github.com/lasville/giustizia/internal/config"
	"github.com/lasville/giustizia/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) {
	requireDocuments := domain.Auth.Require(auth.GateDocuments)
	requireMagistratura := domain.Auth.Require(auth.GateMagistratura)
	requirePersonnel := domain.Auth.Require(auth.GatePersonnel)

	routes.Register(
		mux,
		domain.Auth.Handler().Routes(),
		domain.Notifications.Handler().Routes(),
		domain.Realtime.Handler().Routes(),
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes().Wrap(requireDocuments),
		domain.Cases.Handler().Routes().Wrap(requireMagistratura),
		domain.Assignments.Handler().Routes().Wrap(requireMagistratura),
		domain.Workload.Handler().Routes().Wrap(requireMagistratura),
		domain.Profiles.Handler().Routes().Wrap(requirePersonnel),
	)
}
