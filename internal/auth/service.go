package auth

import (
	"context"

	"github.com/rs/zerolog"

	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/domain"
)

// Service runs the login/register flows: credentials are checked against the
// backend, identity is lifted from the backend token when decodable, and the
// storefront issues its own signed pair carrying the requested role.
type Service struct {
	api    backend.API
	tokens *Manager
	log    zerolog.Logger
}

func NewService(api backend.API, tokens *Manager, log zerolog.Logger) *Service {
	return &Service{api: api, tokens: tokens, log: log.With().Str("component", "auth").Logger()}
}

// Login validates credentials upstream and issues a storefront token pair.
// The role comes from which login surface was used, not from the backend;
// the upstream API carries no role claim the storefront trusts.
func (s *Service) Login(ctx context.Context, creds domain.Credentials, role domain.Role) (domain.TokenPair, Claims, error) {
	upstream, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Warn().Err(err).Str("username", creds.Username).Msg("login rejected")
		return domain.TokenPair{}, Claims{}, err
	}

	claims, err := DecodeUnverified(upstream.Access)
	if err != nil {
		// An opaque backend token still logs the user in; identity falls
		// back to what we know from the request.
		claims = Claims{Username: creds.Username}
	}
	claims.Role = role

	pair, err := s.tokens.IssuePair(claims.UserID, claims.Username, role)
	if err != nil {
		return domain.TokenPair{}, Claims{}, err
	}
	return pair, claims, nil
}

// Register creates the account upstream and logs the new user in.
func (s *Service) Register(ctx context.Context, in backend.RegisterInput) (domain.TokenPair, Claims, error) {
	upstream, err := s.api.Register(ctx, in)
	if err != nil {
		return domain.TokenPair{}, Claims{}, err
	}

	claims, err := DecodeUnverified(upstream.Access)
	if err != nil {
		claims = Claims{Username: in.Username}
	}
	claims.Role = domain.RoleUser

	pair, err := s.tokens.IssuePair(claims.UserID, claims.Username, domain.RoleUser)
	if err != nil {
		return domain.TokenPair{}, Claims{}, err
	}
	return pair, claims, nil
}

// Verify parses a storefront access token.
func (s *Service) Verify(token string) (Claims, error) {
	return s.tokens.Parse(token)
}
