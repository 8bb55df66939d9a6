package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-1",
		UserName: "Ada",
		Email:    "ada@example.com",
	}
}

func TestJWTIssuer_IssuePair(t *testing.T) {
	issuer := NewJWTIssuer("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	pair, err := issuer.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("access-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims.UserID != "user-1" || claims.UserName != "Ada" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("access token has no expiry")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 || ttl > 15*time.Minute {
		t.Fatalf("unexpected access TTL: %v", ttl)
	}
}

func TestJWTIssuer_ParseRefresh(t *testing.T) {
	issuer := NewJWTIssuer("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	pair, err := issuer.IssuePair(testUser())
	if err != nil {
		t.Fatalf("IssuePair returned error: %v", err)
	}

	claims, err := issuer.ParseRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseRefresh failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	// Access and refresh secrets are independent.
	if _, err := issuer.ParseRefresh(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestJWTIssuer_ParseRefresh_Expired(t *testing.T) {
	issuer := NewJWTIssuer("access-secret", "refresh-secret", time.Minute, -time.Minute)
	// Constructor clamps non-positive TTLs to the default, so sign an
	// already-expired token by hand instead.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
	})
	token, err := expired.SignedString([]byte("refresh-secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := issuer.ParseRefresh(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTIssuer_DefaultTTLs(t *testing.T) {
	issuer := NewJWTIssuer("a", "r", 0, 0)
	if issuer.RefreshTTL() != 168*time.Hour {
		t.Fatalf("expected 168h default refresh TTL, got %v", issuer.RefreshTTL())
	}
}
