package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bizops/internal/model"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	// List returns the entries for one entity, newest first.
	List(ctx context.Context, corporationUUID, entityUUID string) ([]model.AuditLog, error)
	// PurgeBefore removes entries older than cutoff and returns how many went.
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) List(ctx context.Context, corporationUUID, entityUUID string) ([]model.AuditLog, error) {
	list := make([]model.AuditLog, 0)
	err := r.db.WithContext(ctx).
		Where("corporation_uuid = ? AND entity_uuid = ?", corporationUUID, entityUUID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *auditLogRepository) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.AuditLog{})
	return res.RowsAffected, res.Error
}
