package request

// PrintLabelRequest is the request body for printing a product QR label.
// Prices arrive as decimals; rcp is optional because labels for
// full-price items omit it.
type PrintLabelRequest struct {
	ID   string  `json:"id" binding:"required,uuid"`
	Name string  `json:"name" binding:"required"`
	Size string  `json:"size" binding:"required"`
	MRP  float64 `json:"mrp" binding:"required,gt=0"`
	RCP  float64 `json:"rcp" binding:"omitempty,gte=0"`
}

// PrintReceiptRequest is the request body for printing a bill receipt.
type PrintReceiptRequest struct {
	BillID string `json:"billId" binding:"required,uuid"`
}
