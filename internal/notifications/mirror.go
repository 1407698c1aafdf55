package notifications

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/logger"
	redisclient "github.com/tidynest/tidynest-backend/pkg/redis"
)

// RedisMirror writes queue entries under TTL'd keys so sibling
// instances can read the active set. Write failures are logged and
// swallowed; the in-process queue never depends on Redis availability.
type RedisMirror struct {
	client *redisclient.Client
	logg   *logger.Logger
	ttl    time.Duration
}

// NewRedisMirror builds a mirror with the given visibility TTL.
func NewRedisMirror(client *redisclient.Client, logg *logger.Logger, ttl time.Duration) *RedisMirror {
	return &RedisMirror{client: client, logg: logg, ttl: ttl}
}

func (m *RedisMirror) Publish(ctx context.Context, notification Notification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		m.logg.Error(ctx, "marshal notification for mirror", err)
		return
	}
	key := m.client.NotificationKey(notification.ID.String())
	if err := m.client.Set(ctx, key, payload, m.ttl); err != nil {
		m.logg.Warn(ctx, "notification mirror write failed: "+err.Error())
	}
}

func (m *RedisMirror) Retract(ctx context.Context, id uuid.UUID) {
	key := m.client.NotificationKey(id.String())
	if err := m.client.Del(ctx, key); err != nil {
		m.logg.Warn(ctx, "notification mirror delete failed: "+err.Error())
	}
}
