package dto

import (
	"strings"

	"bizops/internal/model"
)

// ScopeQuery is the list filter shared by resources whose corporation is optional.
// Global rows are included alongside the corporation's own.
type ScopeQuery struct {
	CorporationUUID string `form:"corporation_uuid" json:"corporation_uuid"`
	Status          string `form:"status" json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// CorporationQuery is the list filter for corporation-scoped resources.
type CorporationQuery struct {
	CorporationUUID string `form:"corporation_uuid" json:"corporation_uuid" binding:"required,notblank"`
	Status          string `form:"status" json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	IsActive        *bool  `form:"is_active" json:"is_active"`
}

// ActiveQuery filters global resources on their active flag.
type ActiveQuery struct {
	Active *bool `form:"active" json:"active"`
}

// UUIDQuery carries the legacy `DELETE ?uuid=` form.
type UUIDQuery struct {
	UUID string `form:"uuid" json:"uuid" binding:"required,notblank"`
}

// StatusOrDefault returns s, or ACTIVE when it was omitted.
func StatusOrDefault(s string) string {
	if s == "" {
		return model.StatusActive
	}
	return s
}

// BoolOrDefault dereferences b, or returns def when it was omitted.
func BoolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// OptionalString trims s and returns nil when nothing is left.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
