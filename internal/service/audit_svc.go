package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"bizops/internal/auth"
	"bizops/internal/model"
	"bizops/internal/repository"
	"bizops/pkg/apperr"
)

// AuditService appends and reads the audit trail.
type AuditService struct {
	repo   repository.AuditLogRepository
	logger *zap.Logger
}

func NewAuditService(repo repository.AuditLogRepository, logger *zap.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record appends one entry. The write it describes has already committed, so a
// failure here is logged and never returned to the caller.
func (s *AuditService) Record(ctx context.Context, caller auth.Caller, corporationUUID *string, entityType, entityUUID, action string, snapshot interface{}) {
	var changes datatypes.JSON
	if snapshot != nil {
		raw, err := json.Marshal(snapshot)
		if err != nil {
			s.logger.Warn("audit snapshot marshal failed", zap.String("entity_type", entityType), zap.Error(err))
		} else {
			changes = raw
		}
	}

	entry := &model.AuditLog{
		CorporationUUID: corporationUUID,
		EntityType:      entityType,
		EntityUUID:      entityUUID,
		Action:          action,
		UserID:          caller.ID,
		Changes:         changes,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("audit log write failed",
			zap.String("entity_type", entityType),
			zap.String("entity_uuid", entityUUID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (s *AuditService) List(ctx context.Context, corporationUUID, entityUUID string) ([]model.AuditLog, error) {
	list, err := s.repo.List(ctx, corporationUUID, entityUUID)
	if err != nil {
		return nil, apperr.FromDB(err, "Audit log")
	}
	return list, nil
}

// Purge removes entries older than retentionDays. Zero disables it.
func (s *AuditService) Purge(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.repo.PurgeBefore(ctx, cutoff)
}
