// Package notifier implements the notification dispatcher over redis pub/sub.
// User notifications are persisted as rows before being pushed, so a client
// that was offline can fetch what it missed; group broadcasts are pushed only.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for persisted user
// notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Message   string
	DeepLink  string
	CreatedAt time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// pushMessage is the JSON envelope published on a channel.
type pushMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// userNotificationPayload is the payload pushed on a user channel.
type userNotificationPayload struct {
	Message  string `json:"message"`
	DeepLink string `json:"deep_link"`
}

// RedisNotificationDispatcher implements NotificationDispatcher with redis
// pub/sub as the push channel and postgres as the notification store.
type RedisNotificationDispatcher struct {
	db     *gorm.DB
	client *redis.Client
}

var _ ports.NotificationDispatcher = (*RedisNotificationDispatcher)(nil)

// NewRedisNotificationDispatcher creates a dispatcher over the given
// connections.
func NewRedisNotificationDispatcher(db *gorm.DB, client *redis.Client) *RedisNotificationDispatcher {
	return &RedisNotificationDispatcher{
		db:     db,
		client: client,
	}
}

// Notify persists a notification row for the user and pushes it to their
// channel. The row is written outside the caller's business transaction: a
// lost push must never roll back a committed workflow, and vice versa.
func (d *RedisNotificationDispatcher) Notify(ctx context.Context, userID kernel.UUID, message, deepLink string) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	row := NotificationDTO{
		ID:        uuid.New(),
		UserID:    userID.Bytes(),
		Message:   message,
		DeepLink:  deepLink,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	return d.publish(ctx, ports.UserGroup(userID), "notification", userNotificationPayload{
		Message:  message,
		DeepLink: deepLink,
	})
}

// BroadcastToGroup pushes an event to all subscribers of a named channel.
func (d *RedisNotificationDispatcher) BroadcastToGroup(ctx context.Context, group, event string, payload any) error {
	return d.publish(ctx, group, event, payload)
}

func (d *RedisNotificationDispatcher) publish(ctx context.Context, channel, event string, payload any) error {
	data, err := json.Marshal(pushMessage{Event: event, Payload: payload})
	if err != nil {
		return err
	}
	return d.client.Publish(ctx, channel, data).Err()
}
