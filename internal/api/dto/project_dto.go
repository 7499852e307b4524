package dto

import (
	"strings"

	"bizops/internal/model"
)

type ProjectReq struct {
	CorporationUUID string `json:"corporation_uuid" binding:"required,notblank"`
	ProjectName     string `json:"project_name" binding:"required,notblank"`
	ProjectID       string `json:"project_id" binding:"required,notblank"`
	Description     string `json:"description"`
	Status          string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r ProjectReq) ApplyTo(m *model.Project) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.ProjectName = strings.TrimSpace(r.ProjectName)
	m.ProjectID = strings.TrimSpace(r.ProjectID)
	m.Description = r.Description
	m.Status = StatusOrDefault(r.Status)
}

// ItemTypeQuery narrows the corporation's item types to one project.
type ItemTypeQuery struct {
	CorporationQuery
	ProjectUUID string `form:"project_uuid" json:"project_uuid"`
}

type ItemTypeReq struct {
	CorporationUUID string `json:"corporation_uuid" binding:"required,notblank"`
	ProjectUUID     string `json:"project_uuid" binding:"required,notblank"`
	ItemType        string `json:"item_type" binding:"required,notblank"`
	ShortName       string `json:"short_name" binding:"required,notblank"`
	IsActive        *bool  `json:"is_active"`
}

func (r ItemTypeReq) ApplyTo(m *model.ItemType) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.ProjectUUID = strings.TrimSpace(r.ProjectUUID)
	m.ItemTypeName = strings.TrimSpace(r.ItemType)
	m.ShortName = strings.TrimSpace(r.ShortName)
	m.IsActive = BoolOrDefault(r.IsActive, true)
}
