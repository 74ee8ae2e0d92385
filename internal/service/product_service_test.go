package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newMemStore())

	err := svc.CreateProduct(ctx, &model.Product{Price: decimal.RequireFromString("1.00")})
	require.Error(t, err)
	require.Equal(t, 400, apperr.StatusOf(err))

	err = svc.CreateProduct(ctx, &model.Product{Name: "Widget", Price: decimal.RequireFromString("-1.00")})
	require.Error(t, err)
	require.Equal(t, 400, apperr.StatusOf(err))

	err = svc.CreateProduct(ctx, &model.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 3})
	require.NoError(t, err)
}

func TestPatchProduct(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewProductService(store)

	product := &model.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 3, Category: "tools"}
	require.NoError(t, store.CreateProduct(ctx, product))

	// 只動給了的欄位
	updated, err := svc.PatchProduct(ctx, product.ProductID, ProductPatch{
		Price: decPtr("12.50"),
		Stock: intPtr(8),
	})
	require.NoError(t, err)
	require.Equal(t, "12.50", updated.Price.StringFixed(2))
	require.Equal(t, uint(8), updated.Stock)
	require.Equal(t, "Widget", updated.Name)
	require.Equal(t, "tools", updated.Category)

	_, err = svc.PatchProduct(ctx, product.ProductID, ProductPatch{Name: strPtr("Widget Pro")})
	require.NoError(t, err)

	got, err := svc.GetProduct(ctx, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, "Widget Pro", got.Name)
	require.Equal(t, "12.50", got.Price.StringFixed(2))
}

func TestPatchProductRejectsNegatives(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewProductService(store)

	product := &model.Product{Name: "Widget", Price: decimal.RequireFromString("9.99")}
	require.NoError(t, store.CreateProduct(ctx, product))

	_, err := svc.PatchProduct(ctx, product.ProductID, ProductPatch{Price: decPtr("-0.01")})
	require.Error(t, err)
	require.Equal(t, 400, apperr.StatusOf(err))

	_, err = svc.PatchProduct(ctx, product.ProductID, ProductPatch{Stock: intPtr(-1)})
	require.Error(t, err)
	require.Equal(t, 400, apperr.StatusOf(err))

	// 拒絕的patch不得留下部分變更
	got, err := svc.GetProduct(ctx, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, "9.99", got.Price.StringFixed(2))
}

func TestPatchProductNotFound(t *testing.T) {
	svc := NewProductService(newMemStore())

	_, err := svc.PatchProduct(context.Background(), 42, ProductPatch{Name: strPtr("x")})
	require.Error(t, err)
	require.Equal(t, "Product not found.", apperr.MessageOf(err))
	require.Equal(t, 404, apperr.StatusOf(err))
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewProductService(store)

	require.NoError(t, store.CreateProduct(ctx, &model.Product{Name: "Red Widget", Price: decimal.RequireFromString("1.00")}))
	require.NoError(t, store.CreateProduct(ctx, &model.Product{Name: "Blue Gadget", Price: decimal.RequireFromString("2.00")}))

	found, err := svc.SearchProducts(ctx, "widget")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Red Widget", found[0].Name)
}
