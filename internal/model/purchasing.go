package model

// POInstruction is a reusable instruction block printed on purchase orders.
type POInstruction struct {
	BaseModel
	CorporationUUID   string `gorm:"size:36;not null;index;uniqueIndex:idx_po_instruction_corp_name" json:"corporation_uuid"`
	POInstructionName string `gorm:"column:po_instruction_name;size:255;not null;uniqueIndex:idx_po_instruction_corp_name" json:"po_instruction_name"`
	Instruction       string `gorm:"type:text;not null" json:"instruction"`
	Status            string `gorm:"size:16;not null;default:ACTIVE" json:"status"`
}

func (POInstruction) TableName() string { return "po_instructions" }

// TermsAndCondition is a terms-and-conditions template.
type TermsAndCondition struct {
	BaseModel
	CorporationUUID string `gorm:"size:36;not null;index;uniqueIndex:idx_terms_corp_name" json:"corporation_uuid"`
	Name            string `gorm:"size:255;not null;uniqueIndex:idx_terms_corp_name" json:"name"`
	Content         string `gorm:"type:text;not null" json:"content"`
	IsActive        bool   `gorm:"not null" json:"is_active"`
}

func (TermsAndCondition) TableName() string { return "terms_and_conditions" }
