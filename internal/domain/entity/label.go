package entity

// LabelHeader holds the shop identity printed at the top of labels and receipts.
type LabelHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Contact  string `json:"contact,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
}

// Label is a value object for a printable product QR label.
// It is NOT a database entity - it is composed from product data at print time.
type Label struct {
	Header    LabelHeader `json:"header"`
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	Size      string      `json:"size"`
	MRP       float64     `json:"mrp"`
	RCP       float64     `json:"rcp"`
}

// ReceiptItem represents a single line item on a printed bill receipt.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
	RCP      float64 `json:"rcp"`
	Total    float64 `json:"total"`
}

// Receipt is a value object for a printable bill receipt, composed from a
// stored bill at print time.
type Receipt struct {
	Header     LabelHeader   `json:"header"`
	BillNumber string        `json:"bill_number"`
	Date       string        `json:"date"`
	Customer   string        `json:"customer,omitempty"`
	Items      []ReceiptItem `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Discount   float64       `json:"discount"`
	Total      float64       `json:"total"`
}
