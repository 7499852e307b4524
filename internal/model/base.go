package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status values shared by the master tables.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// BaseModel is embedded by every entity. The uuid is assigned server-side;
// CreatedBy/UpdatedBy hold the caller's user id.
type BaseModel struct {
	UUID      string    `gorm:"primaryKey;size:36" json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedBy string `gorm:"size:64" json:"created_by"`
	UpdatedBy string `gorm:"size:64" json:"updated_by"`
}

// BeforeCreate assigns the uuid.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	return nil
}

// GetUUID lets generic code address any entity by id.
func (m BaseModel) GetUUID() string { return m.UUID }

// Stamp sets the audit fields for a write by userID.
func (m *BaseModel) Stamp(userID string) {
	if m.CreatedBy == "" {
		m.CreatedBy = userID
	}
	m.UpdatedBy = userID
}

// All lists every table for AutoMigrate, parents before children.
func All() []interface{} {
	return []interface{}{
		&Charge{}, &SalesTax{}, &UOM{}, &Freight{}, &Location{},
		&CostCodeDivision{}, &Project{}, &ItemType{},
		&CostCodeConfiguration{}, &PreferredItem{},
		&POInstruction{}, &TermsAndCondition{},
		&AuditLog{},
	}
}
