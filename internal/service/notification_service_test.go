package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewNotificationService(store)

	user, err := store.CreateUser(ctx, &model.User{Username: "royce", Email: "royce@example.com"})
	require.NoError(t, err)

	require.NoError(t, store.CreateNotification(ctx, &model.Notification{
		UserID: user.UserID, Message: "Order #1 placed. Total: 56.50",
	}))

	notifications, err := svc.ListNotifications(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	_, err = svc.ListNotifications(ctx, 999)
	require.Error(t, err)
	require.Equal(t, "User not found.", apperr.MessageOf(err))
	require.Equal(t, 404, apperr.StatusOf(err))
}
