package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type NotificationRepo struct {
	dbDao *DbDao
}

func NewNotificationRepo(dbDao *DbDao) *NotificationRepo {
	return &NotificationRepo{dbDao: dbDao}
}

// Create - 新增通知
func (s *NotificationRepo) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return s.dbDao.WithContext(ctx).Create(notification).Error
}

// Read - 用戶通知清單, 新的在前
func (s *NotificationRepo) ListNotificationsByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	var notifications []model.Notification
	err := s.dbDao.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}
