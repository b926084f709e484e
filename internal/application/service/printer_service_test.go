package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/pkg/apperror"
)

type fakePrinter struct {
	printed   [][]byte
	connected bool
	failNext  bool
}

func (f *fakePrinter) Print(data []byte) error {
	if f.failNext {
		return errors.New("device not responding")
	}
	f.printed = append(f.printed, data)
	return nil
}

func (f *fakePrinter) Close() error      { return nil }
func (f *fakePrinter) IsConnected() bool { return f.connected }

func testHeader() entity.LabelHeader {
	return entity.LabelHeader{
		ShopName: "RAJSHREE COLLECTION",
		Address:  "Main Road",
		Contact:  "9999999999",
		GSTIN:    "22AAAAA0000A1Z5",
	}
}

func storedBill(repo *mockBillRepository) *entity.Bill {
	bill := &entity.Bill{
		ID:           uuid.New(),
		BillNumber:   "INV2608301234",
		Subtotal:     240000,
		Discount:     72000,
		Total:        168000,
		CustomerName: "Asha",
		CreatedAt:    time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		Items: []entity.BillItem{
			{Name: "Cotton Shirt", Size: "M", MRP: 120000, RCP: 84000, Quantity: 2, Total: 168000},
		},
	}
	repo.store[bill.ID] = bill
	repo.byNumber[bill.BillNumber] = bill.ID
	return bill
}

func TestPrintLabel(t *testing.T) {
	device := &fakePrinter{connected: true}
	svc := NewPrinterService(device, newMockBillRepository(), testHeader(), "usb")

	err := svc.PrintLabel(&entity.Label{
		ProductID: uuid.New().String(),
		Name:      "Cotton Shirt",
		Size:      "M",
		MRP:       1200,
		RCP:       840,
	})

	require.NoError(t, err)
	require.Len(t, device.printed, 1)

	out := string(device.printed[0])
	assert.Contains(t, out, "RAJSHREE COLLECTION")
	assert.Contains(t, out, "MRP: 1200.00")
	assert.Contains(t, out, "RCP: 840.00")
}

func TestPrintLabelDeviceFailure(t *testing.T) {
	device := &fakePrinter{failNext: true}
	svc := NewPrinterService(device, newMockBillRepository(), testHeader(), "usb")

	err := svc.PrintLabel(&entity.Label{ProductID: uuid.New().String(), Name: "X", Size: "M", MRP: 100})

	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)
}

func TestPrintBillReceipt(t *testing.T) {
	device := &fakePrinter{connected: true}
	billRepo := newMockBillRepository()
	bill := storedBill(billRepo)
	svc := NewPrinterService(device, billRepo, testHeader(), "usb")

	receipt, err := svc.PrintBillReceipt(context.Background(), bill.ID)

	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "INV2608301234", receipt.BillNumber)
	assert.Equal(t, 1680.0, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 840.0, receipt.Items[0].RCP)

	out := string(device.printed[0])
	assert.Contains(t, out, "INV2608301234")
	assert.Contains(t, out, "TOTAL:")
	assert.Contains(t, out, "1680.00")
	assert.Contains(t, out, "GSTIN: 22AAAAA0000A1Z5")

	// Successful print marks the bill
	stored, _ := billRepo.GetByID(context.Background(), bill.ID)
	assert.True(t, stored.Printed)
}

func TestPrintBillReceiptDeviceFailure(t *testing.T) {
	device := &fakePrinter{failNext: true}
	billRepo := newMockBillRepository()
	bill := storedBill(billRepo)
	svc := NewPrinterService(device, billRepo, testHeader(), "usb")

	receipt, err := svc.PrintBillReceipt(context.Background(), bill.ID)

	require.Error(t, err)
	// The composed receipt comes back so the caller can offer a reprint
	require.NotNil(t, receipt)

	stored, _ := billRepo.GetByID(context.Background(), bill.ID)
	assert.False(t, stored.Printed)
}

func TestPrintBillReceiptUnknownBill(t *testing.T) {
	svc := NewPrinterService(&fakePrinter{}, newMockBillRepository(), testHeader(), "usb")

	_, err := svc.PrintBillReceipt(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetStatus(t *testing.T) {
	t.Run("configured and connected", func(t *testing.T) {
		svc := NewPrinterService(&fakePrinter{connected: true}, newMockBillRepository(), testHeader(), "usb")
		status := svc.GetStatus()
		assert.True(t, status.Configured)
		assert.True(t, status.Connected)
		assert.Equal(t, "usb", status.Type)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewPrinterService(&fakePrinter{}, newMockBillRepository(), testHeader(), "none")
		status := svc.GetStatus()
		assert.False(t, status.Configured)
		assert.False(t, status.Connected)
	})
}
