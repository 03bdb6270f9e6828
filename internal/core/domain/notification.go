package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification for display.
type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeInfo    NotificationType = "info"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeSuccess, NotificationTypeWarning, NotificationTypeError, NotificationTypeInfo:
		return true
	}
	return false
}

// Notification surfaces a ledger or resetter side effect to the user.
// Only IsRead is mutated after creation.
type Notification struct {
	ID      uuid.UUID        `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    time.Time        `json:"date"`
	IsRead  bool             `json:"is_read"`
}
