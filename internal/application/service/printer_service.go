package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/pkg/apperror"
	"github.com/rajshree/shopbill-api/pkg/printer"
)

// PrinterService formats labels and bill receipts as ESC/POS and drives the
// thermal printer. Printing is best effort: a device failure is reported to
// the caller but never rolls back or blocks the record being printed.
type PrinterService struct {
	printer     printer.Printer
	billRepo    repository.BillRepository
	header      entity.LabelHeader
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	billRepo repository.BillRepository,
	header entity.LabelHeader,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		billRepo:    billRepo,
		header:      header,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintLabel prints a product QR label. The QR encodes the product id so a
// scan at the counter resolves straight to the catalog entry.
func (s *PrinterService) PrintLabel(label *entity.Label) error {
	data := FormatLabel(label, s.header)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (label %s): %v", label.ProductID, err)
		return apperror.NewDeviceError("Printer not connected or print failed")
	}
	return nil
}

// PrintBillReceipt fetches a bill and prints its receipt. On success the
// bill is marked printed; a failed flag update is logged but not surfaced,
// since the paper is already out of the printer.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	receipt := &entity.Receipt{
		Header:     s.header,
		BillNumber: bill.BillNumber,
		Date:       bill.CreatedAt.Format("2006-01-02 15:04"),
		Customer:   bill.CustomerName,
		Subtotal:   float64(bill.Subtotal) / 100,
		Discount:   float64(bill.Discount) / 100,
		Total:      float64(bill.Total) / 100,
	}

	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:     item.Name,
			Size:     item.Size,
			Quantity: item.Quantity,
			RCP:      float64(item.RCP) / 100,
			Total:    float64(item.Total) / 100,
		})
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", bill.BillNumber, err)
		return receipt, apperror.NewDeviceError("Failed to print receipt")
	}

	if err := s.billRepo.MarkPrinted(ctx, bill.ID); err != nil {
		log.Printf("Failed to mark bill %s printed: %v", bill.BillNumber, err)
	}

	return receipt, nil
}

// FormatLabel converts a Label into ESC/POS bytes for a ~38mm label.
func FormatLabel(l *entity.Label, header entity.LabelHeader) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(header.ShopName).
		SetBold(false).
		Separator('-')

	doc.SetAlign(printer.AlignLeft).
		TextF("Name: %.20s", l.Name).
		TextF("Size: %s", l.Size).
		TextF("MRP: %.2f", l.MRP)

	if l.RCP > 0 && l.RCP != l.MRP {
		doc.TextF("RCP: %.2f", l.RCP)
	}

	doc.Separator('-')

	// Small, sharp QR for thermal label stock
	doc.SetAlign(printer.AlignCenter).
		QRCode(l.ProductID, 3, printer.QRECLevelL).
		FeedLines(1)

	return doc.Bytes()
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Contact != "" {
		doc.Text(r.Header.Contact)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Bill No:", r.BillNumber).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		name := item.Name
		if item.Size != "" {
			name = fmt.Sprintf("%.14s %s", item.Name, item.Size)
		}
		doc.ItemLine(item.Quantity, name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.RCP)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.Subtotal)).
		KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for shopping!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
