package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/animal-catalog/internal/config"
	"github.com/spec-kit/animal-catalog/internal/events"
)

// AuditService writes authentication events to the structured log.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil || !a.cfg.Enabled {
		return
	}
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventCustomerRegistered, a.handleCustomerRegistered)
}

func (a *AuditService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	fields := a.baseFields(event)
	if p, ok := event.Payload.(events.LoginSucceededPayload); ok {
		fields = append(fields, zap.String("subject_id", p.SubjectID), zap.String("role", string(p.Role)))
	}
	a.logger.Info("LoginSucceeded", fields...)
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	fields := a.baseFields(event)
	if p, ok := event.Payload.(events.LoginFailedPayload); ok {
		fields = append(fields, zap.String("reason", p.Reason))
	}
	a.logger.Warn("LoginFailed", fields...)
	return nil
}

func (a *AuditService) handleCustomerRegistered(_ context.Context, event events.Event) error {
	fields := a.baseFields(event)
	if p, ok := event.Payload.(events.CustomerRegisteredPayload); ok {
		fields = append(fields, zap.String("customer_id", p.CustomerID))
	}
	a.logger.Info("CustomerRegistered", fields...)
	return nil
}

func (a *AuditService) baseFields(event events.Event) []zap.Field {
	return []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("username", event.Username),
		zap.Time("at", event.Timestamp),
	}
}
