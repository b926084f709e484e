package request

// CreateProductRequest represents a product creation request.
// RCP and the scan code are derived server-side and cannot be supplied.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Size     string  `json:"size" binding:"required,min=1,max=50"`
	MRP      float64 `json:"mrp" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a partial product update request
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Size     *string  `json:"size" binding:"omitempty,min=1,max=50"`
	MRP      *float64 `json:"mrp" binding:"omitempty,gt=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=0"`
}
