package postgres

import (
	"context"
	"errors"
	"fmt"

	"cash-wallet-tracker/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	pool Pool
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(pool Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create inserts a notification.
func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, title, message, type, date, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, n.ID, n.Title, n.Message, n.Type, n.Date, n.IsRead); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetAll fetches every notification, newest first.
func (r *NotificationRepo) GetAll(ctx context.Context) ([]domain.Notification, error) {
	query := `SELECT id, title, message, type, date, is_read
		FROM notifications ORDER BY date DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Date, &n.IsRead); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

// GetByID fetches a notification by its UUID.
func (r *NotificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	query := `SELECT id, title, message, type, date, is_read FROM notifications WHERE id = $1`

	n := &domain.Notification{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Date, &n.IsRead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification by id: %w", err)
	}
	return n, nil
}

// MarkRead flips is_read on a notification.
func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// Delete removes a notification.
func (r *NotificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// Clear removes every notification.
func (r *NotificationRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notifications`); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
