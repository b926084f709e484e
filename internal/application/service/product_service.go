package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rajshree/shopbill-api/internal/domain/entity"
	"github.com/rajshree/shopbill-api/internal/domain/repository"
	"github.com/rajshree/shopbill-api/pkg/apperror"
	"github.com/rajshree/shopbill-api/pkg/pagination"
	"github.com/rajshree/shopbill-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Size     string
	MRP      float64
	Quantity int
}

// CreateProduct creates a catalog entry. RCP is derived from MRP and a
// unique scan code is generated; neither is caller-settable.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	size := strings.TrimSpace(input.Size)
	if name == "" || size == "" {
		return nil, apperror.NewBadRequestError("Name, size, and MRP are required")
	}
	if input.MRP <= 0 {
		return nil, apperror.NewBadRequestError("MRP must be a positive number")
	}

	product := &entity.Product{
		Name:     name,
		Size:     size,
		ScanCode: utils.NewScanCode(),
		Quantity: input.Quantity,
	}
	product.SetMRPFromDecimal(input.MRP)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductByScanCode retrieves a product by its label scan code
func (s *ProductService) GetProductByScanCode(ctx context.Context, code string) (*entity.Product, error) {
	product, err := s.productRepo.GetByScanCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists the catalog newest first
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// SearchProducts finds products by case-insensitive name or size substring
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	return s.productRepo.Search(ctx, strings.TrimSpace(query))
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name     *string
	Size     *string
	MRP      *float64
	Quantity *int
}

// UpdateProduct applies a partial update. When MRP changes, RCP is
// re-derived; the scan code never changes.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Name cannot be blank")
		}
		product.Name = name
	}
	if input.Size != nil {
		size := strings.TrimSpace(*input.Size)
		if size == "" {
			return nil, apperror.NewBadRequestError("Size cannot be blank")
		}
		product.Size = size
	}
	if input.MRP != nil {
		if *input.MRP <= 0 {
			return nil, apperror.NewBadRequestError("MRP must be a positive number")
		}
		product.SetMRPFromDecimal(*input.MRP)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct removes a catalog entry. Bills that referenced it keep their
// snapshotted line items untouched.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, product.ID)
}
