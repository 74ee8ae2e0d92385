package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

// Create - 創建訂單, 連同項目一起寫入
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.dbDao.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("ShippingAddress").
		Preload("User").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單, 新的在前
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Order("order_id desc").
		Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	return s.dbDao.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status).Error
}
