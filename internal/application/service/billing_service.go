package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/pkg/apperror"
	"github.com/rajshree/shopbill-api/pkg/pagination"
)

// maxBillNumberAttempts bounds the redraw loop on bill-number collisions.
// With 9000 possible suffixes per day a handful of attempts is plenty.
const maxBillNumberAttempts = 5

// BillingService handles bill creation, retrieval and sales summaries.
type BillingService struct {
	billRepo    repository.BillRepository
	productRepo repository.ProductRepository
	numbers     *BillNumberGenerator
	now         func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	numbers *BillNumberGenerator,
) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		productRepo: productRepo,
		numbers:     numbers,
		now:         time.Now,
	}
}

// BillItemInput represents one requested line of a bill
type BillItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	Items          []BillItemInput
	CustomerName   string
	WhatsappNumber string
}

// CreateBill resolves each requested line against the catalog, aggregates
// totals in cents, assigns a unique bill number and persists the bill with
// its line-item snapshot. Validation happens before any write; nothing is
// persisted on failure.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one item is required")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be a positive integer")
		}
		if item.ProductID == uuid.Nil {
			return nil, apperror.NewBadRequestError("Product reference is required for every item")
		}
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	// Resolve lines and accumulate totals in cents. Prices are snapshotted
	// here; later catalog edits never touch a saved bill.
	var subtotal, discount int64
	items := make([]entity.BillItem, 0, len(input.Items))

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		qty := int64(item.Quantity)
		subtotal += product.MRP * qty
		discount += (product.MRP - product.RCP) * qty

		items = append(items, entity.BillItem{
			ProductID: product.ID,
			Name:      product.Name,
			Size:      product.Size,
			MRP:       product.MRP,
			RCP:       product.RCP,
			Quantity:  item.Quantity,
			Total:     product.RCP * qty,
		})
	}

	bill := &entity.Bill{
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          subtotal - discount,
		CustomerName:   input.CustomerName,
		WhatsappNumber: input.WhatsappNumber,
		Items:          items,
	}

	// The unique index on bill_number arbitrates concurrent creation; on a
	// collision, redraw a fresh suffix instead of failing the whole bill.
	for attempt := 0; attempt < maxBillNumberAttempts; attempt++ {
		bill.BillNumber = s.numbers.Next(s.now())
		err = s.billRepo.Create(ctx, bill)
		if err == nil {
			return s.billRepo.GetByID(ctx, bill.ID)
		}
		if !apperror.IsConflict(err) {
			return nil, err
		}
	}

	return nil, apperror.NewConflictError("Could not allocate a unique bill number, please retry")
}

// GetBill retrieves a bill by ID
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills newest first, optionally bounded to a half-open
// creation-time interval [start, end).
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// SalesSummary holds period-bounded sales statistics. Monetary figures are
// decimals for presentation.
type SalesSummary struct {
	Period           string    `json:"period"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalBills       int64     `json:"total_bills"`
	TotalSales       float64   `json:"total_sales"`
	TotalDiscount    float64   `json:"total_discount"`
	TotalItems       int64     `json:"total_items"`
	AverageBillValue float64   `json:"average_bill_value"`
}

// GetSalesSummary computes sales statistics for a named period: "today",
// "month", "year", or anything else for all time.
func (s *BillingService) GetSalesSummary(ctx context.Context, period string) (*SalesSummary, error) {
	end := s.now()
	start := periodStart(period, end)

	totals, err := s.billRepo.SalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		Period:        period,
		StartDate:     start,
		EndDate:       end,
		TotalBills:    totals.BillCount,
		TotalSales:    float64(totals.TotalSales) / 100,
		TotalDiscount: float64(totals.TotalDiscount) / 100,
		TotalItems:    totals.TotalItems,
	}

	// Average must be an explicit 0 when there are no bills, never NaN.
	if totals.BillCount > 0 {
		summary.AverageBillValue = summary.TotalSales / float64(totals.BillCount)
	}

	return summary, nil
}

// periodStart returns the start of the covering window for a period token,
// relative to now. Unrecognized tokens mean all time.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Unix(0, 0)
	}
}
