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

type IOrderService interface {
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	InitiatePayment(ctx context.Context, orderID uint) (*model.Order, error)
	ConfirmPayment(ctx context.Context, orderID uint, paymentStatus string) error
	PaymentStatus(ctx context.Context, orderID uint) (uint, string, decimal.Decimal, error)
}

type OrderService struct {
	store db.Store
}

func NewOrderService(store db.Store) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order not found.")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.store.GetAllOrders(ctx)
}

// InitiatePayment mock: 不接真金流, 只回訂單與金額
func (s *OrderService) InitiatePayment(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.GetOrder(ctx, orderID)
}

// ConfirmPayment 只有success會把Pending轉成Paid,
// 失敗是業務結果不是transient fault, 直接回報不重試
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID uint, paymentStatus string) error {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if paymentStatus != "success" {
		return apperr.InvalidState("Payment failed.")
	}
	return s.store.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusPaid)
}

func (s *OrderService) PaymentStatus(ctx context.Context, orderID uint) (uint, string, decimal.Decimal, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return 0, "", decimal.Decimal{}, err
	}
	return order.OrderID, order.Status, order.TotalAmount, nil
}

var _ IOrderService = (*OrderService)(nil)
