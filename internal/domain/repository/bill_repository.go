package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations. Bills are
// append-only financial records: Create inserts the bill and its line items
// atomically, and only the printed/notified flags may change afterwards.
type BillRepository interface {
	// Create persists the bill and its items in a single transaction.
	// Returns a Conflict apperror if the bill number is already taken.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// SalesTotals aggregates bills whose creation time falls in [start, end].
	SalesTotals(ctx context.Context, start, end time.Time) (*SalesTotals, error)
	MarkPrinted(ctx context.Context, id uuid.UUID) error
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

// BillFilterParams contains filtering parameters for bill queries.
// StartDate/EndDate bound a half-open interval [StartDate, EndDate) on the
// creation time; nil bounds mean all time.
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	StartDate  *time.Time
	EndDate    *time.Time
}

// SalesTotals holds aggregated sales figures over a date window.
// Monetary sums are in cents.
type SalesTotals struct {
	BillCount     int64
	TotalSales    int64
	TotalDiscount int64
	TotalItems    int64
}
