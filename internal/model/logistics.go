package model

// Freight is a ship-via option (carrier / shipping method).
type Freight struct {
	BaseModel
	ShipVia     string `gorm:"size:255;not null;uniqueIndex" json:"ship_via"`
	Description string `gorm:"type:text" json:"description"`
	Active      bool   `gorm:"not null" json:"active"`
}

func (Freight) TableName() string { return "freights" }

// Location is a delivery / warehouse address.
type Location struct {
	BaseModel
	LocationName string `gorm:"size:255;not null;uniqueIndex" json:"location_name"`
	AddressLine1 string `gorm:"column:address_line_1;size:255" json:"address_line_1"`
	AddressLine2 string `gorm:"column:address_line_2;size:255" json:"address_line_2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	Zip          string `gorm:"size:20" json:"zip"`
	Country      string `gorm:"size:100" json:"country"`
	Active       bool   `gorm:"not null" json:"active"`
}

func (Location) TableName() string { return "locations" }
