package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a finalized sale. Line items are snapshotted at sale time
// and never change afterwards, even if the referenced products are edited or
// deleted. Only the printed/notified flags may be updated after creation.
type Bill struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber     string    `gorm:"size:100;uniqueIndex;not null" json:"bill_number"`
	Subtotal       int64     `gorm:"not null" json:"-"` // Stored in cents
	Discount       int64     `gorm:"not null" json:"-"` // Stored in cents
	Total          int64     `gorm:"not null" json:"-"` // Stored in cents
	CustomerName   string    `gorm:"size:255" json:"customer_name,omitempty"`
	WhatsappNumber string    `gorm:"size:20" json:"whatsapp_number,omitempty"`
	Printed        bool      `gorm:"default:false" json:"printed"`
	Notified       bool      `gorm:"default:false" json:"notified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(b),
		Subtotal: float64(b.Subtotal) / 100,
		Discount: float64(b.Discount) / 100,
		Total:    float64(b.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetTotalDecimal returns the total as a decimal
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.Total) / 100
}

// TotalQuantity returns the number of units sold across all line items.
func (b *Bill) TotalQuantity() int {
	var n int
	for _, item := range b.Items {
		n += item.Quantity
	}
	return n
}

// BillItem is one line of a bill. The product reference is kept for
// traceability only; name, size and prices are captured at sale time.
type BillItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Size      string    `gorm:"size:50" json:"size"`
	MRP       int64     `gorm:"not null" json:"-"` // Stored in cents
	RCP       int64     `gorm:"not null" json:"-"` // Stored in cents
	Quantity  int       `gorm:"not null" json:"quantity"`
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents, RCP x quantity
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		MRP   float64 `json:"mrp"`
		RCP   float64 `json:"rcp"`
		Total float64 `json:"total"`
	}{
		Alias: Alias(i),
		MRP:   float64(i.MRP) / 100,
		RCP:   float64(i.RCP) / 100,
		Total: float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
