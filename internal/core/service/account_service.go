package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/api/metrics"
	"github.com/backend-server/accounts-api/internal/core/domain"
	"github.com/backend-server/accounts-api/internal/core/ports"
)

type accountService struct {
	repo       ports.AccountRepository
	hasher     PasswordHasher
	issuer     TokenIssuer
	tokenStore ports.TokenStore
	auditor    ports.AuditRecorder
	log        zerolog.Logger
}

// NewAccountService returns an AccountService implementation.
func NewAccountService(
	repo ports.AccountRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	tokenStore ports.TokenStore,
	auditor ports.AuditRecorder,
	log zerolog.Logger,
) ports.AccountService {
	return &accountService{
		repo:       repo,
		hasher:     hasher,
		issuer:     issuer,
		tokenStore: tokenStore,
		auditor:    auditor,
		log:        log,
	}
}

// Register validates, persists, and audit-logs a new account.
func (s *accountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	// 1. Required-field check. Only non-emptiness here; the password
	// minimum is a schema rule applied at the sealing step.
	if in.UserName == "" || in.Email == "" || in.Password == "" {
		metrics.RegistrationErrorsTotal.WithLabelValues("validation").Inc()
		return nil, domain.ErrRegistrationFieldsMissing
	}

	email := domain.NormalizeEmail(in.Email)

	// 2. Uniqueness pre-check. The store's unique index is the real
	// guarantee; this just gives the common case a clean 409.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		metrics.RegistrationErrorsTotal.WithLabelValues("store").Inc()
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	// ID is minted before the sealing pass so the token claims and the
	// audit entry can carry it; it stays opaque and immutable afterwards.
	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		UserName:  domain.NormalizeUserName(in.UserName),
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 3. Credential sealing: hash + token issuance, the explicit stand-in
	// for the original pre-save hook.
	if err := s.sealCredentials(ctx, user, in.Password); err != nil {
		metrics.RegistrationErrorsTotal.WithLabelValues("credentials").Inc()
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if err == domain.ErrEmailTaken {
			metrics.RegistrationErrorsTotal.WithLabelValues("conflict").Inc()
			return nil, err
		}
		metrics.RegistrationErrorsTotal.WithLabelValues("store").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}

	// 4. Fire-and-forget audit entry. Submit never blocks and never
	// fails; whatever happens downstream stays out of the response.
	s.auditor.Submit(domain.RegistrationEntry{
		UserID:    created.ID,
		UserName:  created.UserName,
		Email:     created.Email,
		Timestamp: time.Now().UTC(),
		IP:        in.ClientIP,
	})

	metrics.RegistrationsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates an email/password pair.
func (s *accountService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("validation").Inc()
		return nil, domain.ErrLoginFieldsMissing
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if err == domain.ErrUserNotFound {
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("login: lookup email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return nil, domain.ErrPasswordMismatch
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return user, nil
}

// Refresh rotates the token pair for a valid, currently-stored refresh token.
func (s *accountService) Refresh(ctx context.Context, refreshToken string) (ports.TokenPair, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return ports.TokenPair{}, domain.ErrInvalidToken
	}

	// A refresh token is only honoured while it is the stored current one
	// for its user; rotation or expiry of the store entry revokes it.
	current, err := s.tokenStore.Current(ctx, claims.UserID)
	if err != nil || current != refreshToken {
		return ports.TokenPair{}, domain.ErrInvalidToken
	}

	user := &domain.User{ID: claims.UserID, UserName: claims.UserName, Email: claims.Email}
	pair, err := s.issuer.IssuePair(user)
	if err != nil {
		return ports.TokenPair{}, fmt.Errorf("refresh: %w", err)
	}
	if err := s.tokenStore.Save(ctx, claims.UserID, pair.RefreshToken, s.issuer.RefreshTTL()); err != nil {
		return ports.TokenPair{}, fmt.Errorf("refresh: store token: %w", err)
	}

	s.log.Info().Str("user_id", claims.UserID).Msg("token pair rotated")
	return pair, nil
}

// sealCredentials hashes the plaintext and mints the token pair onto the
// record. Token issuance failure is logged and counted but does not abort
// the save: the record goes through with empty token fields, matching the
// original hook's behavior.
func (s *accountService) sealCredentials(ctx context.Context, user *domain.User, plaintext string) error {
	if err := domain.ValidatePassword(plaintext); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("seal credentials: %w", err)
	}
	user.PasswordHash = hash

	pair, err := s.issuer.IssuePair(user)
	if err != nil {
		metrics.TokenIssueFailuresTotal.Inc()
		s.log.Error().Err(err).Str("email", user.Email).Msg("token issuance failed, saving user without tokens")
		return nil
	}
	user.AccessToken = pair.AccessToken
	user.RefreshToken = pair.RefreshToken

	if err := s.tokenStore.Save(ctx, user.ID, pair.RefreshToken, s.issuer.RefreshTTL()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to store refresh token")
	}
	return nil
}
