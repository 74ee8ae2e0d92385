package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type AddressRepo struct {
	dbDao *DbDao
}

func NewAddressRepo(dbDao *DbDao) *AddressRepo {
	return &AddressRepo{dbDao: dbDao}
}

// Create - 新增地址
func (s *AddressRepo) CreateAddress(ctx context.Context, address *model.Address) error {
	return s.dbDao.WithContext(ctx).Create(address).Error
}

// Read - 根據ID查詢地址
func (s *AddressRepo) GetAddressByID(ctx context.Context, id uint) (*model.Address, error) {
	var address model.Address
	err := s.dbDao.WithContext(ctx).First(&address, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// Read - 查詢屬於特定用戶的地址
func (s *AddressRepo) GetUserAddress(ctx context.Context, id, userID uint) (*model.Address, error) {
	var address model.Address
	err := s.dbDao.WithContext(ctx).
		Where("address_id = ? AND user_id = ?", id, userID).
		First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// Read - 用戶地址清單, 新的在前
func (s *AddressRepo) ListAddressesByUser(ctx context.Context, userID uint) ([]model.Address, error) {
	var addresses []model.Address
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&addresses).Error
	return addresses, err
}

// Update - 更新地址
func (s *AddressRepo) UpdateAddress(ctx context.Context, address *model.Address) error {
	return s.dbDao.WithContext(ctx).Save(address).Error
}

// Delete - 硬刪除地址, 關聯訂單的shipping_address_id由FK設NULL
func (s *AddressRepo) DeleteAddress(ctx context.Context, id uint) error {
	return s.dbDao.WithContext(ctx).Delete(&model.Address{}, id).Error
}
