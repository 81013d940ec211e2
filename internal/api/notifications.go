package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Notifications is the in-app notification client. All operations act
// on the current user's inbox.
type Notifications struct {
	gw *gateway.Gateway
}

// NewNotifications is the constructor for Notifications.
func NewNotifications(gw *gateway.Gateway) *Notifications {
	return &Notifications{gw: gw}
}

// My returns one page of the current user's notifications, newest first.
func (c *Notifications) My(ctx context.Context, page, size int) (*entity.Page[entity.Notification], error) {
	query := gateway.PageQuery(page, size)
	query.Set("sort", "createdAt,desc")

	var out entity.Page[entity.Notification]
	if err := c.gw.Get(ctx, "notifications/my", query, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// MyUnreadCount returns how many notifications are unread.
func (c *Notifications) MyUnreadCount(ctx context.Context) (int64, error) {
	var out entity.UnreadCount
	if err := c.gw.Get(ctx, "notifications/my/unread-count", nil, &out); err != nil {
		return 0, err
	}

	return out.Count, nil
}

// MarkRead marks one notification as read.
func (c *Notifications) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var out entity.Notification
	if err := c.gw.Patch(ctx, "notifications/"+id.String()+"/read", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// MarkAllRead marks the whole inbox as read.
func (c *Notifications) MarkAllRead(ctx context.Context) error {
	return c.gw.Patch(ctx, "notifications/my/read-all", nil, nil)
}
