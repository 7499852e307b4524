package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit actions.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog is an append-only record of a write to a master table.
type AuditLog struct {
	UUID            string         `gorm:"primaryKey;size:36" json:"uuid"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	CorporationUUID *string        `gorm:"size:36;index:idx_audit_corp_entity" json:"corporation_uuid"`
	EntityType      string         `gorm:"size:64;not null" json:"entity_type"`
	EntityUUID      string         `gorm:"size:36;not null;index:idx_audit_corp_entity" json:"entity_uuid"`
	Action          string         `gorm:"size:16;not null" json:"action"`
	UserID          string         `gorm:"size:64" json:"user_id"`
	Changes         datatypes.JSON `json:"changes"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == "" {
		l.UUID = uuid.NewString()
	}
	return nil
}
