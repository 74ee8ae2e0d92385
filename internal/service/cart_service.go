package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLineView 單行明細, subtotal每次讀取重算, 不落地
type CartLineView struct {
	ProductID uint            `json:"product_id"`
	ItemName  string          `json:"item_name"`
	ItemPrice decimal.Decimal `json:"item_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type ICartService interface {
	AddToCart(ctx context.Context, email string, productID uint, quantity int) (int, error)
	ViewCart(ctx context.Context, email string) ([]CartLineView, decimal.Decimal, error)
	UpdateCartItem(ctx context.Context, email string, productID uint, quantity int) (int, error)
	RemoveFromCart(ctx context.Context, email string, productID uint) (string, error)
}

type CartService struct {
	store db.Store
}

func NewCartService(store db.Store) *CartService {
	return &CartService{store: store}
}

func (s *CartService) resolveUserAndProduct(ctx context.Context, email string, productID uint) (*model.User, *model.Product, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("User not found.")
		}
		return nil, nil, err
	}

	product, err := s.store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Product not found.")
		}
		return nil, nil, err
	}
	return user, product, nil
}

// AddToCart 同商品已在車內則數量相加, 不檢查庫存, 庫存只在結帳時把關
func (s *CartService) AddToCart(ctx context.Context, email string, productID uint, quantity int) (int, error) {
	if quantity < 1 {
		return 0, apperr.Validation("Invalid quantity.")
	}

	user, _, err := s.resolveUserAndProduct(ctx, email, productID)
	if err != nil {
		return 0, err
	}

	item, err := s.store.GetCartItem(ctx, user.UserID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		item = &model.CartItem{
			UserID:    user.UserID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.store.CreateCartItem(ctx, item); err != nil {
			return 0, err
		}
		return item.Quantity, nil
	}

	item.Quantity += quantity
	if err := s.store.UpdateCartItem(ctx, item); err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// ViewCart 小計與總額每次讀取現算
func (s *CartService) ViewCart(ctx context.Context, email string) ([]CartLineView, decimal.Decimal, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Decimal{}, apperr.NotFound("User not found.")
		}
		return nil, decimal.Decimal{}, err
	}

	items, err := s.store.GetCartItemsByUser(ctx, user.UserID)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}

	lines := make([]CartLineView, 0, len(items))
	total := decimal.NewFromInt(0)
	for _, item := range items {
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, CartLineView{
			ProductID: item.ProductID,
			ItemName:  item.DisplayName(),
			ItemPrice: item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	return lines, total, nil
}

// UpdateCartItem 覆蓋數量, 不存在的行不自動建立
func (s *CartService) UpdateCartItem(ctx context.Context, email string, productID uint, quantity int) (int, error) {
	if quantity < 1 {
		return 0, apperr.Validation("Invalid quantity.")
	}

	user, _, err := s.resolveUserAndProduct(ctx, email, productID)
	if err != nil {
		return 0, err
	}

	item, err := s.store.GetCartItem(ctx, user.UserID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("Product not in cart.")
		}
		return 0, err
	}

	item.Quantity = quantity
	if err := s.store.UpdateCartItem(ctx, item); err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, email string, productID uint) (string, error) {
	user, product, err := s.resolveUserAndProduct(ctx, email, productID)
	if err != nil {
		return "", err
	}

	if _, err := s.store.GetCartItem(ctx, user.UserID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Product not in cart.")
		}
		return "", err
	}

	if err := s.store.DeleteCartItem(ctx, user.UserID, productID); err != nil {
		return "", err
	}
	return product.Name, nil
}

var _ ICartService = (*CartService)(nil)
