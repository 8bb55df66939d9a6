package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/backend-server/accounts-api/internal/core/domain"
	"github.com/backend-server/accounts-api/internal/core/ports"
)

// Claims is the signed token payload: user identity plus registered expiry.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// TokenIssuer abstracts token-pair issuance so the account service can be
// exercised against a failing issuer.
type TokenIssuer interface {
	IssuePair(user *domain.User) (ports.TokenPair, error)
	ParseRefresh(token string) (*Claims, error)
	RefreshTTL() time.Duration
}

// JWTIssuer mints the access/refresh JWT pair. Secrets and TTLs are
// injected at construction; the issuer itself reads no environment.
type JWTIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTIssuer {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 168 * time.Hour
	}
	return &JWTIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// RefreshTTL reports the refresh token lifetime, used as the token-store TTL.
func (i *JWTIssuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

// IssuePair signs a fresh access and refresh token for the user.
func (i *JWTIssuer) IssuePair(user *domain.User) (ports.TokenPair, error) {
	access, err := i.sign(user, i.accessSecret, i.accessTTL)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := i.sign(user, i.refreshSecret, i.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseRefresh validates a refresh token and returns its claims.
func (i *JWTIssuer) ParseRefresh(token string) (*Claims, error) {
	return parseClaims(token, i.refreshSecret)
}

func (i *JWTIssuer) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
	})
	return token.SignedString(secret)
}

func parseClaims(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
