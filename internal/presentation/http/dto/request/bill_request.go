package request

import "github.com/google/uuid"

// BillItemRequest is one requested line of a new bill
type BillItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	Items          []BillItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName   string            `json:"customerName" binding:"omitempty,max=255"`
	WhatsappNumber string            `json:"whatsappNumber" binding:"omitempty,max=20"`
}

// BillFilterRequest represents bill list filter parameters
type BillFilterRequest struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
