package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) *CartRepo {
	return &CartRepo{dbDao: dbDao}
}

// Create - 新增購物車項目
func (s *CartRepo) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Create(item).Error
}

// Read - 取單一購物車項目
func (s *CartRepo) GetCartItem(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 取用戶全部購物車項目, 含商品資料, 一次讀取
func (s *CartRepo) GetCartItemsByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.dbDao.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&items).Error
	return items, err
}

// Update - 更新購物車項目
func (s *CartRepo) UpdateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.dbDao.WithContext(ctx).Save(item).Error
}

// Delete - 刪除單一購物車項目
func (s *CartRepo) DeleteCartItem(ctx context.Context, userID, productID uint) error {
	return s.dbDao.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

// Delete - 清空用戶購物車, 回傳實際刪除列數讓呼叫端核對
func (s *CartRepo) ClearCart(ctx context.Context, userID uint) (int64, error) {
	result := s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{})
	return result.RowsAffected, result.Error
}
