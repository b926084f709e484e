package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajshree/shopbill-api/pkg/apperror"
)

func setupProducts(t *testing.T) (*ProductService, *mockProductRepository) {
	t.Helper()
	repo := newMockProductRepository()
	return NewProductService(repo), repo
}

func TestCreateProductDerivesRCP(t *testing.T) {
	svc, _ := setupProducts(t)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:     "Cotton Shirt",
		Size:     "M",
		MRP:      1200,
		Quantity: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(120000), product.MRP)
	assert.Equal(t, int64(84000), product.RCP)
	assert.Equal(t, 50, product.Quantity)
	assert.NotEmpty(t, product.ScanCode)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCreateProductRounding(t *testing.T) {
	svc, _ := setupProducts(t)

	cases := []struct {
		mrp      float64
		wantMRP  int64
		wantRCP  int64
	}{
		{1200, 120000, 84000},
		{99, 9900, 6930},
		{0.99, 99, 69},  // 0.693 rounds down to 0.69
		{0.01, 1, 1},    // 0.007 rounds up to 0.01
		{1999.95, 199995, 139997}, // 1399.965 rounds up
	}

	for _, tc := range cases {
		product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
			Name: "Item", Size: "F", MRP: tc.mrp,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.wantMRP, product.MRP, "MRP for %v", tc.mrp)
		assert.Equal(t, tc.wantRCP, product.RCP, "RCP for %v", tc.mrp)
		assert.LessOrEqual(t, product.RCP, product.MRP)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc, repo := setupProducts(t)

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"blank name", CreateProductInput{Name: "  ", Size: "M", MRP: 100}},
		{"blank size", CreateProductInput{Name: "Shirt", Size: "", MRP: 100}},
		{"zero MRP", CreateProductInput{Name: "Shirt", Size: "M", MRP: 0}},
		{"negative MRP", CreateProductInput{Name: "Shirt", Size: "M", MRP: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), &tc.input)
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		})
	}

	assert.Empty(t, repo.store)
}

func TestScanCodesAreUnique(t *testing.T) {
	svc, _ := setupProducts(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
			Name: "Shirt", Size: "M", MRP: 100,
		})
		require.NoError(t, err)
		assert.False(t, seen[product.ScanCode], "duplicate scan code %q", product.ScanCode)
		seen[product.ScanCode] = true
	}
}

func TestGetProductByScanCode(t *testing.T) {
	svc, _ := setupProducts(t)

	created, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Jacket", Size: "XL", MRP: 2500,
	})
	require.NoError(t, err)

	found, err := svc.GetProductByScanCode(context.Background(), created.ScanCode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetProductByScanCode(context.Background(), "no-such-code")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := setupProducts(t)

	created, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "Jeans", Size: "32", MRP: 1800,
	})
	require.NoError(t, err)

	t.Run("MRP change re-derives RCP", func(t *testing.T) {
		mrp := 2000.0
		updated, err := svc.UpdateProduct(context.Background(), created.ID, &UpdateProductInput{MRP: &mrp})
		require.NoError(t, err)
		assert.Equal(t, int64(200000), updated.MRP)
		assert.Equal(t, int64(140000), updated.RCP)
		assert.Equal(t, created.ScanCode, updated.ScanCode)
	})

	t.Run("name-only change leaves prices alone", func(t *testing.T) {
		name := "Denim Jeans"
		updated, err := svc.UpdateProduct(context.Background(), created.ID, &UpdateProductInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Denim Jeans", updated.Name)
		assert.Equal(t, int64(200000), updated.MRP)
		assert.Equal(t, int64(140000), updated.RCP)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		name := "   "
		_, err := svc.UpdateProduct(context.Background(), created.ID, &UpdateProductInput{Name: &name})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		name := "X"
		_, err := svc.UpdateProduct(context.Background(), uuid.New(), &UpdateProductInput{Name: &name})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := setupProducts(t)

	created, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name: "T-Shirt", Size: "L", MRP: 600,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	assert.Empty(t, repo.store)

	err = svc.DeleteProduct(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
