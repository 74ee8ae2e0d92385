package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	infra_mail "github.com/RoyceAzure/lab/shopcenter/internal/infra/mail"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutResult 結帳結果
type CheckoutResult struct {
	OrderID     uint
	TotalAmount decimal.Decimal
}

type ICheckoutService interface {
	PlaceOrder(ctx context.Context, email string, addressID *uint) (*CheckoutResult, error)
}

// CheckoutService 把購物車轉成訂單的流程核心:
// 先做完整的前置檢核(不寫任何東西), 再於單一交易內
// 建立訂單+項目, 扣庫存, 清空購物車, 全做或全不做
type CheckoutService struct {
	store  db.Store
	sender infra_mail.EmailSender
}

func NewCheckoutService(store db.Store, sender infra_mail.EmailSender) *CheckoutService {
	return &CheckoutService{store: store, sender: sender}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, email string, addressID *uint) (*CheckoutResult, error) {
	if email == "" {
		return nil, apperr.Validation("Email is required.")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}

	// 一次讀出購物車與商品, 之後的檢核與計價都以這份快照為準
	items, err := s.store.GetCartItemsByUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperr.InvalidState("Cart is empty.")
	}

	// 整車先驗完庫存才動手, 首個不足即整單失敗
	total := decimal.NewFromInt(0)
	for _, item := range items {
		if item.Quantity > int(item.Product.Stock) {
			return nil, apperr.Newf(apperr.InvalidStateCode, "Insufficient stock for %s", item.Product.Name)
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// 地址可有可無, 有給就必須屬於下單用戶
	var shippingAddressID *uint
	if addressID != nil {
		address, err := s.store.GetUserAddress(ctx, *addressID, user.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Address not found.")
			}
			return nil, err
		}
		shippingAddressID = &address.AddressID
	}

	order := &model.Order{
		UserID:            user.UserID,
		TotalAmount:       total,
		Status:            model.OrderStatusPending,
		ShippingAddressID: shippingAddressID,
	}
	for _, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Product.Price,
			Subtotal:        item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	// 自此所有寫入同一交易: 任一步失敗, 訂單/扣庫存/清車全數回滾
	err = s.store.WithinTransaction(ctx, func(tx db.Store) error {
		for _, item := range items {
			// 鎖定商品列後重驗庫存, 兩筆同庫存的結帳在這裡分勝負
			if err := tx.DeductProductStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, db.ErrProductStockNotEnough) {
					return apperr.Newf(apperr.InvalidStateCode, "Insufficient stock for %s", item.Product.Name)
				}
				return err
			}
		}

		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		if err := tx.CreateNotification(ctx, &model.Notification{
			UserID:  user.UserID,
			Message: fmt.Sprintf("Order #%d placed. Total: %s", order.OrderID, total.StringFixed(2)),
		}); err != nil {
			return err
		}

		// 清車列數必須等於快照列數: 同一用戶的另一筆結帳若已消耗
		// 這些購物車列, 這裡會少刪甚至刪到0列, 整單回滾避免重複扣款
		deleted, err := tx.ClearCart(ctx, user.UserID)
		if err != nil {
			return err
		}
		if deleted != int64(len(items)) {
			return apperr.InvalidState("Cart changed during checkout. Please try again.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 確認信在交易外送, 失敗不影響已成立的訂單
	_ = s.sender.SendEmail("Order confirmation",
		fmt.Sprintf("Thanks! Your order #%d total %s has been received.", order.OrderID, total.StringFixed(2)),
		[]string{user.Email}, nil, nil, nil)

	return &CheckoutResult{OrderID: order.OrderID, TotalAmount: total}, nil
}

var _ ICheckoutService = (*CheckoutService)(nil)
