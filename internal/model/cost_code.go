package model

// CostCodeDivision groups cost codes; listed by DivisionOrder.
type CostCodeDivision struct {
	BaseModel
	CorporationUUID string `gorm:"size:36;not null;index;uniqueIndex:idx_division_corp_number" json:"corporation_uuid"`
	DivisionNumber  string `gorm:"size:50;not null;uniqueIndex:idx_division_corp_number" json:"division_number"`
	DivisionName    string `gorm:"size:255;not null" json:"division_name"`
	DivisionOrder   int    `gorm:"not null;default:0" json:"division_order"`
	Description     string `gorm:"type:text" json:"description"`
	IsActive        bool   `gorm:"not null" json:"is_active"`
}

func (CostCodeDivision) TableName() string { return "cost_code_divisions" }

// CostCodeConfiguration is a cost code under a division. Deleting the division
// removes its configurations; deleting a configuration removes its preferred
// items. Both cascades are foreign-key rules.
type CostCodeConfiguration struct {
	BaseModel
	CorporationUUID string            `gorm:"size:36;not null;index;uniqueIndex:idx_cost_code_corp_number" json:"corporation_uuid"`
	DivisionUUID    string            `gorm:"size:36;not null;index" json:"division_uuid"`
	Division        *CostCodeDivision `gorm:"foreignKey:DivisionUUID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
	CostCodeNumber  string            `gorm:"size:50;not null;uniqueIndex:idx_cost_code_corp_number" json:"cost_code_number"`
	CostCodeName    string            `gorm:"size:255;not null" json:"cost_code_name"`
	IsActive        bool              `gorm:"not null" json:"is_active"`

	PreferredItems []PreferredItem `gorm:"foreignKey:ConfigurationUUID;references:UUID;constraint:OnDelete:CASCADE" json:"preferred_items"`
}

func (CostCodeConfiguration) TableName() string { return "cost_code_configurations" }

// PreferredItem is an item suggested for a cost code. ItemTypeUUID, when set,
// marks the item type as in use.
type PreferredItem struct {
	BaseModel
	ConfigurationUUID string  `gorm:"size:36;not null;index" json:"configuration_uuid"`
	ItemTypeUUID      *string `gorm:"size:36;index" json:"item_type_uuid"`
	ItemName          string  `gorm:"size:255;not null" json:"item_name"`
	UnitPrice         float64 `gorm:"type:decimal(14,4);not null;default:0" json:"unit_price"`
}

func (PreferredItem) TableName() string { return "cost_code_preferred_items" }
