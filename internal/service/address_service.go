package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"gorm.io/gorm"
)

// AddressPatch 部分更新用, nil欄位不動
type AddressPatch struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
}

func (p AddressPatch) Apply(address *model.Address) {
	if p.Street != nil {
		address.Street = *p.Street
	}
	if p.City != nil {
		address.City = *p.City
	}
	if p.State != nil {
		address.State = *p.State
	}
	if p.ZipCode != nil {
		address.ZipCode = *p.ZipCode
	}
}

type IAddressService interface {
	CreateAddress(ctx context.Context, userID uint, street, city, state, zipCode string) (*model.Address, error)
	ListAddresses(ctx context.Context, userID uint) ([]model.Address, error)
	PatchAddress(ctx context.Context, addressID uint, patch AddressPatch) (*model.Address, error)
	DeleteAddress(ctx context.Context, addressID uint) error
}

type AddressService struct {
	store db.Store
}

func NewAddressService(store db.Store) *AddressService {
	return &AddressService{store: store}
}

func (s *AddressService) CreateAddress(ctx context.Context, userID uint, street, city, state, zipCode string) (*model.Address, error) {
	if street == "" || city == "" || state == "" || zipCode == "" {
		return nil, apperr.Validation("All fields are required.")
	}

	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}

	address := &model.Address{
		UserID:  userID,
		Street:  street,
		City:    city,
		State:   state,
		ZipCode: zipCode,
	}
	if err := s.store.CreateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) ListAddresses(ctx context.Context, userID uint) ([]model.Address, error) {
	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	return s.store.ListAddressesByUser(ctx, userID)
}

func (s *AddressService) PatchAddress(ctx context.Context, addressID uint, patch AddressPatch) (*model.Address, error) {
	address, err := s.store.GetAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Address not found.")
		}
		return nil, err
	}

	patch.Apply(address)
	if err := s.store.UpdateAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// DeleteAddress 刪除後引用它的訂單shipping_address轉NULL, 由FK處理
func (s *AddressService) DeleteAddress(ctx context.Context, addressID uint) error {
	if _, err := s.store.GetAddressByID(ctx, addressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Address not found.")
		}
		return err
	}
	return s.store.DeleteAddress(ctx, addressID)
}

var _ IAddressService = (*AddressService)(nil)
