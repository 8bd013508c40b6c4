package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/google/uuid"

	"github.com/lasville/giustizia/internal/config"
	"github.com/lasville/giustizia/internal/ranks"
	"github.com/lasville/giustizia/pkg/handlers"
	"github.com/lasville/giustizia/pkg/lifecycle"
)

// System defines the public contract for session resolution and
// route guarding.
type System interface {
	Handler() *Handler

	// Start registers a startup hook that performs OIDC provider discovery.
	Start(lc *lifecycle.Coordinator) error
	// Middleware verifies the bearer token, resolves the session, and
	// stores it in the request context. Requests without a valid token
	// are rejected with 401.
	Middleware() func(http.Handler) http.Handler
	// Require wraps a handler with a gate check against the request session.
	Require(gate Gate) func(http.HandlerFunc) http.HandlerFunc
	// Invalidate evicts a collaborator from the session cache.
	Invalidate(id uuid.UUID)
}

type system struct {
	cfg      config.AuthConfig
	logger   *slog.Logger
	resolver *CachedResolver
	verifier atomic.Pointer[oidc.IDTokenVerifier]
}

// New creates the auth system. The resolver loads profile snapshots
// from the personnel store; verification is initialized during Start.
func New(cfg config.AuthConfig, resolver Resolver, logger *slog.Logger) System {
	return &system{
		cfg:      cfg,
		logger:   logger.With("system", "auth"),
		resolver: NewCachedResolver(resolver, cfg.CacheTTLDuration()),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s.logger)
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting auth system")

	lc.OnStartup(func() {
		provider, err := oidc.NewProvider(lc.Context(), s.cfg.Issuer)
		if err != nil {
			s.logger.Error("identity provider discovery failed", "issuer", s.cfg.Issuer, "error", err)
			return
		}

		s.verifier.Store(provider.Verifier(&oidc.Config{ClientID: s.cfg.Audience}))
		s.logger.Info("identity provider ready", "issuer", s.cfg.Issuer)
	})

	return nil
}

func (s *system) Invalidate(id uuid.UUID) {
	s.resolver.Invalidate(id)
}

func (s *system) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := s.authenticate(r)
			if err != nil {
				handlers.RespondError(w, s.logger, MapHTTPStatus(err), err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

func (s *system) Require(gate Gate) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !SessionFrom(r.Context()).Allowed(gate) {
				handlers.RespondError(w, s.logger, http.StatusForbidden, ErrForbidden)
				return
			}
			next(w, r)
		}
	}
}

func (s *system) authenticate(r *http.Request) (*Session, error) {
	raw, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	verifier := s.verifier.Load()
	if verifier == nil {
		return nil, ErrNotReady
	}

	token, err := verifier.Verify(r.Context(), raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(token.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := token.Claims(&claims); err != nil {
		return nil, ErrInvalidToken
	}

	profile, err := s.resolver.Resolve(r.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		// Collaborators without a profile row still get a session,
		// at the bottom of the hierarchy.
		profile = &Profile{
			ID:       id,
			Username: s.username(claims.Email),
			Level:    0,
			Function: ranks.FunctionNessuna,
		}
	}

	return &Session{Profile: *profile}, nil
}

// username extracts the collaborator name from the synthetic email
// contract (<username>@<domain>).
func (s *system) username(email string) string {
	if name, ok := strings.CutSuffix(email, "@"+s.cfg.EmailDomain); ok {
		return name
	}
	if name, _, ok := strings.Cut(email, "@"); ok {
		return name
	}
	return email
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
