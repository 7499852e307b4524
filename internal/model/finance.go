package model

// Charge types.
const (
	ChargeTypeFreight      = "FREIGHT"
	ChargeTypePacking      = "PACKING"
	ChargeTypeCustomDuties = "CUSTOM_DUTIES"
	ChargeTypeOther        = "OTHER"
)

// Charge is an additional line charge applied to purchase orders.
// CorporationUUID nil means the charge is global.
type Charge struct {
	BaseModel
	CorporationUUID *string `gorm:"size:36;index;uniqueIndex:idx_charge_corp_name" json:"corporation_uuid"`
	ChargeName      string  `gorm:"size:255;not null;uniqueIndex:idx_charge_corp_name" json:"charge_name"`
	ChargeType      string  `gorm:"size:32;not null" json:"charge_type"`
	Status          string  `gorm:"size:16;not null;default:ACTIVE" json:"status"`
}

func (Charge) TableName() string { return "charges" }

// SalesTax is a named tax rate; TaxPercentage is stored as provided.
type SalesTax struct {
	BaseModel
	CorporationUUID *string `gorm:"size:36;index;uniqueIndex:idx_sales_tax_corp_name" json:"corporation_uuid"`
	TaxName         string  `gorm:"size:255;not null;uniqueIndex:idx_sales_tax_corp_name" json:"tax_name"`
	TaxPercentage   float64 `gorm:"type:decimal(7,4);not null" json:"tax_percentage"`
	Status          string  `gorm:"size:16;not null;default:ACTIVE" json:"status"`
}

func (SalesTax) TableName() string { return "sales_taxes" }

// UOM is a unit of measure.
type UOM struct {
	BaseModel
	CorporationUUID *string `gorm:"size:36;index;uniqueIndex:idx_uom_corp_name" json:"corporation_uuid"`
	UOMName         string  `gorm:"column:uom_name;size:100;not null;uniqueIndex:idx_uom_corp_name" json:"uom_name"`
	ShortName       string  `gorm:"size:20;not null" json:"short_name"`
	Status          string  `gorm:"size:16;not null;default:ACTIVE" json:"status"`
}

func (UOM) TableName() string { return "uoms" }
