package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog entry. Prices are stored in cents; RCP is
// always derived from MRP (70%, rounded to the nearest cent) and is never
// settable on its own.
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Size      string         `gorm:"size:50;not null" json:"size"`
	MRP       int64          `gorm:"not null" json:"-"` // Stored in cents
	RCP       int64          `gorm:"not null" json:"-"` // Stored in cents, derived from MRP
	ScanCode  string         `gorm:"size:100;uniqueIndex;not null" json:"scan_code"`
	Quantity  int            `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// DeriveRCP computes the discounted price for a list price, both in cents.
// 70% of MRP, rounded half-up to the nearest cent.
func DeriveRCP(mrpCents int64) int64 {
	return (mrpCents*7 + 5) / 10
}

// SetMRPFromDecimal sets the list price from a decimal value and re-derives RCP.
func (p *Product) SetMRPFromDecimal(mrp float64) {
	p.MRP = int64(mrp*100 + 0.5)
	p.RCP = DeriveRCP(p.MRP)
}

// GetMRPDecimal returns the list price as a decimal (for display)
func (p *Product) GetMRPDecimal() float64 {
	return float64(p.MRP) / 100
}

// GetRCPDecimal returns the discounted price as a decimal (for display)
func (p *Product) GetRCPDecimal() float64 {
	return float64(p.RCP) / 100
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		MRP float64 `json:"mrp"`
		RCP float64 `json:"rcp"`
	}{
		Alias: Alias(p),
		MRP:   p.GetMRPDecimal(),
		RCP:   p.GetRCPDecimal(),
	})
}
