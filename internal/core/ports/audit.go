package ports

import (
	"context"

	"github.com/backend-server/accounts-api/internal/core/domain"
)

// RegistrationAuditSink is the append-only log of registration events.
type RegistrationAuditSink interface {
	Append(ctx context.Context, entry domain.RegistrationEntry) error
}

// AuditRecorder accepts entries for asynchronous delivery to the sink.
// Submit must never block the caller and must never return an error: the
// registration response cannot depend on the audit outcome.
type AuditRecorder interface {
	Submit(entry domain.RegistrationEntry)
}

// AuditService processes a single queued entry.
type AuditService interface {
	Process(ctx context.Context, entry domain.RegistrationEntry) error
}
