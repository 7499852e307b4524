package dto

import (
	"strings"

	"bizops/internal/model"
	"bizops/pkg/validate"
)

// ==================== Charge ====================

// ChargeReq create / full-replace body
type ChargeReq struct {
	CorporationUUID *string `json:"corporation_uuid"`
	ChargeName      string  `json:"charge_name" binding:"required,notblank"`
	ChargeType      string  `json:"charge_type" binding:"required,oneof=FREIGHT PACKING CUSTOM_DUTIES OTHER"`
	Status          string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r ChargeReq) ApplyTo(m *model.Charge) {
	m.CorporationUUID = OptionalString(r.CorporationUUID)
	m.ChargeName = strings.TrimSpace(r.ChargeName)
	m.ChargeType = r.ChargeType
	m.Status = StatusOrDefault(r.Status)
}

// ==================== SalesTax ====================

// SalesTaxReq create / full-replace body. tax_percentage may arrive as a JSON
// number or a numeric string.
type SalesTaxReq struct {
	CorporationUUID *string         `json:"corporation_uuid"`
	TaxName         string          `json:"tax_name" binding:"required,notblank"`
	TaxPercentage   validate.Number `json:"tax_percentage" binding:"present,percent"`
	Status          string          `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r SalesTaxReq) ApplyTo(m *model.SalesTax) {
	m.CorporationUUID = OptionalString(r.CorporationUUID)
	m.TaxName = strings.TrimSpace(r.TaxName)
	m.TaxPercentage = r.TaxPercentage.Float64()
	m.Status = StatusOrDefault(r.Status)
}

// ==================== UOM ====================

type UOMReq struct {
	CorporationUUID *string `json:"corporation_uuid"`
	UOMName         string  `json:"uom_name" binding:"required,notblank"`
	ShortName       string  `json:"short_name" binding:"required,notblank"`
	Status          string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UOMReq) ApplyTo(m *model.UOM) {
	m.CorporationUUID = OptionalString(r.CorporationUUID)
	m.UOMName = strings.TrimSpace(r.UOMName)
	m.ShortName = strings.TrimSpace(r.ShortName)
	m.Status = StatusOrDefault(r.Status)
}
