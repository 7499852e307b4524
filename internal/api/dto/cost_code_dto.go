package dto

import (
	"strings"

	"bizops/internal/model"
)

type CostCodeDivisionReq struct {
	CorporationUUID string `json:"corporation_uuid" binding:"required,notblank"`
	DivisionNumber  string `json:"division_number" binding:"required,notblank"`
	DivisionName    string `json:"division_name" binding:"required,notblank"`
	DivisionOrder   int    `json:"division_order" binding:"gte=0"`
	Description     string `json:"description"`
	IsActive        *bool  `json:"is_active"`
}

func (r CostCodeDivisionReq) ApplyTo(m *model.CostCodeDivision) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.DivisionNumber = strings.TrimSpace(r.DivisionNumber)
	m.DivisionName = strings.TrimSpace(r.DivisionName)
	m.DivisionOrder = r.DivisionOrder
	m.Description = r.Description
	m.IsActive = BoolOrDefault(r.IsActive, true)
}

// CostCodeConfigQuery list filter; division_uuid is optional
type CostCodeConfigQuery struct {
	CorporationQuery
	DivisionUUID string `form:"division_uuid" json:"division_uuid"`
}

// PreferredItemReq one suggested item under a cost code
type PreferredItemReq struct {
	ItemTypeUUID *string `json:"item_type_uuid"`
	ItemName     string  `json:"item_name" binding:"required,notblank"`
	UnitPrice    float64 `json:"unit_price" binding:"gte=0"`
}

// CostCodeConfigurationReq replaces the configuration and its preferred items.
type CostCodeConfigurationReq struct {
	CorporationUUID string             `json:"corporation_uuid" binding:"required,notblank"`
	DivisionUUID    string             `json:"division_uuid" binding:"required,notblank"`
	CostCodeNumber  string             `json:"cost_code_number" binding:"required,notblank"`
	CostCodeName    string             `json:"cost_code_name" binding:"required,notblank"`
	IsActive        *bool              `json:"is_active"`
	PreferredItems  []PreferredItemReq `json:"preferred_items" binding:"omitempty,dive"`
}

func (r CostCodeConfigurationReq) ApplyTo(m *model.CostCodeConfiguration) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.DivisionUUID = strings.TrimSpace(r.DivisionUUID)
	m.CostCodeNumber = strings.TrimSpace(r.CostCodeNumber)
	m.CostCodeName = strings.TrimSpace(r.CostCodeName)
	m.IsActive = BoolOrDefault(r.IsActive, true)

	m.PreferredItems = make([]model.PreferredItem, 0, len(r.PreferredItems))
	for _, it := range r.PreferredItems {
		m.PreferredItems = append(m.PreferredItems, model.PreferredItem{
			ItemTypeUUID: OptionalString(it.ItemTypeUUID),
			ItemName:     strings.TrimSpace(it.ItemName),
			UnitPrice:    it.UnitPrice,
		})
	}
}
