package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/pkg/apperror"
	qrcode "github.com/skip2/go-qrcode"
)

// PDFService renders printable A6 bill documents with a verification QR.
// Rendering is a read-only consumer of a persisted bill.
type PDFService struct {
	header entity.LabelHeader
}

// NewPDFService creates a new PDF service.
func NewPDFService(header entity.LabelHeader) *PDFService {
	return &PDFService{header: header}
}

// billQRPayload is the data encoded into the verification QR.
type billQRPayload struct {
	BillNumber string    `json:"billNumber"`
	Date       time.Time `json:"date"`
	Total      float64   `json:"total"`
}

// RenderBill writes the bill as an A6 PDF to w.
func (s *PDFService) RenderBill(bill *entity.Bill, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A6", "")
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 16

	// Shop header
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentWidth, 6, s.header.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if s.header.Address != "" {
		pdf.CellFormat(contentWidth, 3.5, s.header.Address, "", 1, "C", false, 0, "")
	}
	if s.header.Contact != "" {
		pdf.CellFormat(contentWidth, 3.5, s.header.Contact, "", 1, "C", false, 0, "")
	}
	gstin := s.header.GSTIN
	if gstin == "" {
		gstin = "Not Available"
	}
	pdf.CellFormat(contentWidth, 3.5, "GSTIN: "+gstin, "", 1, "C", false, 0, "")

	drawRule(pdf, contentWidth)

	// Bill info
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentWidth/2, 4, "Bill No: "+bill.BillNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 4, "Date: "+bill.CreatedAt.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentWidth, 4, "Time: "+bill.CreatedAt.Format("15:04:05"), "", 1, "R", false, 0, "")
	if bill.CustomerName != "" {
		pdf.CellFormat(contentWidth, 4, "Customer: "+bill.CustomerName, "", 1, "L", false, 0, "")
	}

	drawRule(pdf, contentWidth)

	// Items table
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentWidth*0.46, 4, "Item", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth*0.12, 4, "Qty", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentWidth*0.20, 4, "Rate", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentWidth*0.22, 4, "Amount", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range bill.Items {
		name := item.Name
		if item.Size != "" {
			name = name + " " + item.Size
		}
		pdf.CellFormat(contentWidth*0.46, 4, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth*0.12, 4, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentWidth*0.20, 4, fmt.Sprintf("Rs.%.2f", float64(item.RCP)/100), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentWidth*0.22, 4, fmt.Sprintf("Rs.%.2f", float64(item.Total)/100), "", 1, "R", false, 0, "")

		save := float64(item.MRP*int64(item.Quantity)-item.Total) / 100
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(contentWidth, 3, fmt.Sprintf("MRP: Rs.%.2f (Save: Rs.%.2f)", float64(item.MRP)/100, save), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
	}

	drawRule(pdf, contentWidth)

	// Totals
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentWidth/2, 4, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 4, fmt.Sprintf("Rs.%.2f", float64(bill.Subtotal)/100), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentWidth/2, 4, "Discount:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 4, fmt.Sprintf("- Rs.%.2f", float64(bill.Discount)/100), "", 1, "R", false, 0, "")

	drawRule(pdf, contentWidth)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth/2, 6, "Total Amount:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, 6, fmt.Sprintf("Rs.%.2f", float64(bill.Total)/100), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentWidth, 3.5, "Thank you for shopping with us!", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentWidth, 3.5, "Please visit again", "", 1, "C", false, 0, "")

	// Verification QR
	payload, err := json.Marshal(billQRPayload{
		BillNumber: bill.BillNumber,
		Date:       bill.CreatedAt,
		Total:      bill.GetTotalDecimal(),
	})
	if err != nil {
		return apperror.NewAppError(500, "Failed to encode bill QR data")
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return apperror.NewAppError(500, "Failed to generate bill QR code")
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("bill-qr", opts, bytes.NewReader(png))
	qrSize := 25.0
	pdf.ImageOptions("bill-qr", (pageWidth-qrSize)/2, pdf.GetY()+2, qrSize, qrSize, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + qrSize + 3)

	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(contentWidth, 3, "Scan QR for bill verification", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render bill PDF: %w", err)
	}
	return nil
}

func drawRule(pdf *gofpdf.Fpdf, width float64) {
	pdf.Ln(1)
	x := pdf.GetX()
	y := pdf.GetY()
	pdf.Line(x, y, x+width, y)
	pdf.Ln(2)
}
