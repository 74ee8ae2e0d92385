package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
)

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).First(&product, productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品, 新的在前
func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).Order("created_at desc").Find(&products).Error
	return products, err
}

// Read - 名稱模糊查詢
func (s *ProductRepo) SearchProductsByName(ctx context.Context, query string) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.WithContext(ctx).Save(product).Error
}

// Update - 扣庫存, 同一交易內先鎖定再檢查
func (s *ProductRepo) DeductProductStock(ctx context.Context, productID uint, quantity int) error {
	var product model.Product
	if err := s.dbDao.WithContext(ctx).
		Set("gorm:for_update", true).
		First(&product, productID).Error; err != nil {
		return err
	}

	if int(product.Stock) < quantity {
		return ErrProductStockNotEnough
	}

	return s.dbDao.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}

// Delete - 硬刪除商品, 已有訂單項目時由FK RESTRICT擋下
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uint) error {
	return s.dbDao.WithContext(ctx).Delete(&model.Product{}, id).Error
}
