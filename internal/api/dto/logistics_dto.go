package dto

import (
	"strings"

	"bizops/internal/model"
)

// FreightReq ship-via body; active defaults to true
type FreightReq struct {
	ShipVia     string `json:"ship_via" binding:"required,notblank"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (r FreightReq) ApplyTo(m *model.Freight) {
	m.ShipVia = strings.TrimSpace(r.ShipVia)
	m.Description = r.Description
	m.Active = BoolOrDefault(r.Active, true)
}

// LocationReq delivery / warehouse address body
type LocationReq struct {
	LocationName string `json:"location_name" binding:"required,notblank"`
	AddressLine1 string `json:"address_line_1" binding:"required,notblank"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city" binding:"required,notblank"`
	State        string `json:"state" binding:"required,notblank"`
	Zip          string `json:"zip" binding:"required,notblank"`
	Country      string `json:"country" binding:"required,notblank"`
	Active       *bool  `json:"active"`
}

func (r LocationReq) ApplyTo(m *model.Location) {
	m.LocationName = strings.TrimSpace(r.LocationName)
	m.AddressLine1 = strings.TrimSpace(r.AddressLine1)
	m.AddressLine2 = strings.TrimSpace(r.AddressLine2)
	m.City = strings.TrimSpace(r.City)
	m.State = strings.TrimSpace(r.State)
	m.Zip = strings.TrimSpace(r.Zip)
	m.Country = strings.TrimSpace(r.Country)
	m.Active = BoolOrDefault(r.Active, true)
}
