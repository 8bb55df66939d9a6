package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/backend-server/accounts-api/internal/api/metrics"
	"github.com/backend-server/accounts-api/internal/core/domain"
	"github.com/backend-server/accounts-api/internal/core/ports"
)

const appendTimeout = 5 * time.Second

type auditService struct {
	sink ports.RegistrationAuditSink
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends entries to the sink.
func NewAuditService(sink ports.RegistrationAuditSink, log zerolog.Logger) ports.AuditService {
	return &auditService{sink: sink, log: log}
}

// Process appends one registration entry. Errors are returned for the
// dispatcher to log; nothing downstream of the sink is retried.
func (s *auditService) Process(ctx context.Context, entry domain.RegistrationEntry) error {
	appendCtx, cancel := context.WithTimeout(ctx, appendTimeout)
	defer cancel()

	if err := s.sink.Append(appendCtx, entry); err != nil {
		metrics.AuditEntriesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("audit append: %w", err)
	}

	metrics.AuditEntriesTotal.WithLabelValues("ok").Inc()
	s.log.Debug().
		Str("user_id", entry.UserID).
		Str("email", entry.Email).
		Msg("registration audit entry written")
	return nil
}
