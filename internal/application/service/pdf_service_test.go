package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajshree/shopbill-api/internal/domain/entity"
)

func TestRenderBillProducesPDF(t *testing.T) {
	svc := NewPDFService(entity.LabelHeader{
		ShopName: "RAJSHREE COLLECTION",
		Address:  "Main Road",
		Contact:  "9999999999",
	})

	bill := &entity.Bill{
		ID:         uuid.New(),
		BillNumber: "INV2608301234",
		Subtotal:   420000,
		Discount:   126000,
		Total:      294000,
		CreatedAt:  time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		Items: []entity.BillItem{
			{Name: "Cotton Shirt", Size: "M", MRP: 120000, RCP: 84000, Quantity: 2, Total: 168000},
			{Name: "Jeans", Size: "32", MRP: 180000, RCP: 126000, Quantity: 1, Total: 126000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.RenderBill(bill, &buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is not a PDF")
	assert.Greater(t, len(out), 1000)
}

func TestRenderBillHandlesMissingOptionalFields(t *testing.T) {
	svc := NewPDFService(entity.LabelHeader{ShopName: "RAJSHREE COLLECTION"})

	bill := &entity.Bill{
		ID:         uuid.New(),
		BillNumber: "INV2608305678",
		Total:      84000,
		Subtotal:   120000,
		Discount:   36000,
		CreatedAt:  time.Now(),
		Items: []entity.BillItem{
			{Name: "T-Shirt", MRP: 120000, RCP: 84000, Quantity: 1, Total: 84000},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.RenderBill(bill, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
