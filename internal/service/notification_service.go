package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"gorm.io/gorm"
)

type INotificationService interface {
	ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error)
}

type NotificationService struct {
	store db.Store
}

func NewNotificationService(store db.Store) *NotificationService {
	return &NotificationService{store: store}
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error) {
	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	return s.store.ListNotificationsByUser(ctx, userID)
}

var _ INotificationService = (*NotificationService)(nil)
