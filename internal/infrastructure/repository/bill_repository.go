package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	domainRepo "github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/pkg/apperror"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create inserts the bill and its line items in one transaction. A duplicate
// bill number is reported as a Conflict so the caller can retry with a fresh
// number.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	err := r.db.WithContext(ctx).Create(bill).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Bill number already exists")
	}
	return err
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) GetByBillNumber(ctx context.Context, billNumber string) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	// Half-open interval [start, end)
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) SalesTotals(ctx context.Context, start, end time.Time) (*domainRepo.SalesTotals, error) {
	totals := &domainRepo.SalesTotals{}

	row := struct {
		BillCount     int64
		TotalSales    int64
		TotalDiscount int64
	}{}

	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COUNT(*) AS bill_count, COALESCE(SUM(total), 0) AS total_sales, COALESCE(SUM(discount), 0) AS total_discount").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	totals.BillCount = row.BillCount
	totals.TotalSales = row.TotalSales
	totals.TotalDiscount = row.TotalDiscount

	var items int64
	err = r.db.WithContext(ctx).Model(&entity.BillItem{}).
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Where("bills.created_at >= ? AND bills.created_at <= ?", start, end).
		Select("COALESCE(SUM(bill_items.quantity), 0)").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	totals.TotalItems = items

	return totals, nil
}

func (r *billRepository) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("printed", true).Error
}

func (r *billRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ?", id).
		Update("notified", true).Error
}
