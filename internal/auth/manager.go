package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nexus-storefront/internal/domain"
)

// Claims carried by storefront-issued tokens.
type Claims struct {
	UserID   int         `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the storefront's own JWTs. Upstream backend
// tokens are only decoded, never verified; the storefront has no backend
// signing key.
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair signs an access/refresh token pair for the given identity.
func (m *Manager) IssuePair(userID int, username string, role domain.Role) (domain.TokenPair, error) {
	access, err := m.issue(userID, username, role, m.accessTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := m.issue(userID, username, role, m.refreshTTL)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) issue(userID int, username string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a storefront token and returns its claims. Any failure maps
// to domain.ErrUnauthorized.
func (m *Manager) Parse(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

// DecodeUnverified extracts claims from an upstream token without verifying
// its signature. The result is display-level identity only and must never
// gate access on its own.
func DecodeUnverified(token string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, errors.Join(domain.ErrUnauthorized, err)
	}
	return claims, nil
}
