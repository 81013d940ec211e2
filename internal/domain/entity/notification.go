package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to the signed-in user.
type Notification struct {
	ID            uuid.UUID  `json:"id"`
	RecipientType string     `json:"recipientType"`
	RecipientID   uuid.UUID  `json:"recipientId"`
	Type          string     `json:"type"`
	Channel       string     `json:"channel"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	ScheduledAt   *time.Time `json:"scheduledAt"`
	SentAt        *time.Time `json:"sentAt"`
	Status        string     `json:"status"`
	ReferenceType string     `json:"referenceType"`
	ReferenceID   *uuid.UUID `json:"referenceId"`
	ReadAt        *time.Time `json:"readAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Unread reports whether the notification has not been read yet.
func (n Notification) Unread() bool {
	return n.ReadAt == nil
}

// UnreadCount is the badge counter for the notification bell.
type UnreadCount struct {
	Count int64 `json:"count"`
}
