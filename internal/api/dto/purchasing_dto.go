package dto

import (
	"strings"

	"bizops/internal/model"
)

type POInstructionReq struct {
	CorporationUUID   string `json:"corporation_uuid" binding:"required,notblank"`
	POInstructionName string `json:"po_instruction_name" binding:"required,notblank"`
	Instruction       string `json:"instruction" binding:"required,notblank"`
	Status            string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r POInstructionReq) ApplyTo(m *model.POInstruction) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.POInstructionName = strings.TrimSpace(r.POInstructionName)
	m.Instruction = r.Instruction
	m.Status = StatusOrDefault(r.Status)
}

type TermsAndConditionReq struct {
	CorporationUUID string `json:"corporation_uuid" binding:"required,notblank"`
	Name            string `json:"name" binding:"required,notblank"`
	Content         string `json:"content" binding:"required,notblank"`
	IsActive        *bool  `json:"is_active"`
}

func (r TermsAndConditionReq) ApplyTo(m *model.TermsAndCondition) {
	m.CorporationUUID = strings.TrimSpace(r.CorporationUUID)
	m.Name = strings.TrimSpace(r.Name)
	m.Content = r.Content
	m.IsActive = BoolOrDefault(r.IsActive, true)
}
