package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	AuditSink portsrepo.AuditSink
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeCompany checks that the actor may touch resources of the company.
func (s *BaseService) AuthorizeCompany(ctx context.Context, actor domain.Actor, companyID string) error {
	if actor.CanAccessCompany(companyID) {
		return nil
	}
	s.LogDebug(ctx, "Company access denied",
		slog.String("user_id", actor.UserID),
		slog.String("company_id", companyID),
		slog.String("role", string(actor.Role)))
	return apperrors.ErrForbidden
}

// RecordAudit writes an audit event after a successful mutation. Audit
// failures never fail the originating operation; they are logged and dropped.
func (s *BaseService) RecordAudit(ctx context.Context, actor domain.Actor, companyID string, action domain.AuditAction, entityType, entityID string, details map[string]any) {
	if s.AuditSink == nil {
		return
	}

	var detailsJSON string
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			detailsJSON = string(b)
		}
	}

	event := domain.AuditEvent{
		EventID:    uuid.NewString(),
		CompanyID:  companyID,
		UserID:     actor.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    detailsJSON,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.AuditSink.Record(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to record audit event",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("action", string(action)))
	}
}
