package service

import (
	"context"
	"fmt"

	"cash-wallet-tracker/internal/core/domain"
	"cash-wallet-tracker/internal/core/ports"
	"cash-wallet-tracker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotificationServiceImpl implements ports.NotificationService.
type NotificationServiceImpl struct {
	notifRepo ports.NotificationRepository
	log       zerolog.Logger
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(notifRepo ports.NotificationRepository, log zerolog.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{notifRepo: notifRepo, log: log}
}

func (s *NotificationServiceImpl) List(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := s.notifRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("list notifications: %w", err))
	}
	return notifications, nil
}

// MarkRead flips IsRead on a notification. No other field ever mutates.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get notification: %w", err))
	}
	if n == nil {
		return apperror.ErrNotificationNotFound()
	}
	if err := s.notifRepo.MarkRead(ctx, notificationID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("mark notification read: %w", err))
	}
	return nil
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, notificationID uuid.UUID) error {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return apperror.ErrPersistence(fmt.Errorf("get notification: %w", err))
	}
	if n == nil {
		return apperror.ErrNotificationNotFound()
	}
	if err := s.notifRepo.Delete(ctx, notificationID); err != nil {
		return apperror.ErrPersistence(fmt.Errorf("delete notification: %w", err))
	}
	return nil
}
