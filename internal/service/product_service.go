package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// pgForeignKeyViolation postgres FK違反錯誤碼
const pgForeignKeyViolation = "23503"

// ProductPatch 部分更新用, nil欄位不動
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	ImageURL    *string
	Price       *decimal.Decimal
	Stock       *int
}

// Apply 決定性合併, 不走反射
func (p ProductPatch) Apply(product *model.Product) error {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Price != nil {
		if p.Price.IsNegative() {
			return apperr.Validation("Invalid price.")
		}
		product.Price = *p.Price
	}
	if p.Stock != nil {
		if *p.Stock < 0 {
			return apperr.Validation("Invalid stock.")
		}
		product.Stock = uint(*p.Stock)
	}
	return nil
}

type IProductService interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
	PatchProduct(ctx context.Context, productID uint, patch ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductService struct {
	store db.Store
}

func NewProductService(store db.Store) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Name == "" {
		return apperr.Validation("name and price are required.")
	}
	if product.Price.IsNegative() {
		return apperr.Validation("Invalid price or stock.")
	}
	return s.store.CreateProduct(ctx, product)
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product not found.")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.GetAllProducts(ctx)
}

func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	return s.store.SearchProductsByName(ctx, query)
}

func (s *ProductService) PatchProduct(ctx context.Context, productID uint, patch ProductPatch) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(product); err != nil {
		return nil, err
	}
	if err := s.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct 商品已出現在訂單項目時FK RESTRICT會擋下刪除
func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return err
	}

	if err := s.store.DeleteProduct(ctx, productID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperr.InvalidState("Product is referenced by existing orders.")
		}
		return err
	}
	return nil
}

var _ IProductService = (*ProductService)(nil)
