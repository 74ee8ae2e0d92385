package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/shopspring/decimal"
)

// demoDiscountRate 固定示範折扣率, 沒有真正的coupon登錄表
var demoDiscountRate = decimal.NewFromFloat(0.10)

// CouponQuote 套用折扣的試算結果
type CouponQuote struct {
	ProductID       uint            `json:"product_id"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}

type ICouponService interface {
	ApplyCoupon(ctx context.Context, productID uint, couponCode string) (*CouponQuote, error)
	RemoveCoupon(ctx context.Context, productID uint) (*CouponQuote, error)
}

// CouponService 無狀態試算, 任何非空code都接受, 不寫任何東西
type CouponService struct {
	products IProductService
}

func NewCouponService(products IProductService) *CouponService {
	return &CouponService{products: products}
}

func (s *CouponService) ApplyCoupon(ctx context.Context, productID uint, couponCode string) (*CouponQuote, error) {
	if couponCode == "" {
		return nil, apperr.Validation("Product ID and Coupon Code are required.")
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	discounted := product.Price.Mul(decimal.NewFromInt(1).Sub(demoDiscountRate))
	return &CouponQuote{
		ProductID:       product.ProductID,
		OriginalPrice:   product.Price,
		DiscountedPrice: discounted,
	}, nil
}

// RemoveCoupon 沒有儲存任何折扣狀態, 只回報原價
func (s *CouponService) RemoveCoupon(ctx context.Context, productID uint) (*CouponQuote, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &CouponQuote{
		ProductID:     product.ProductID,
		OriginalPrice: product.Price,
	}, nil
}

var _ ICouponService = (*CouponService)(nil)
