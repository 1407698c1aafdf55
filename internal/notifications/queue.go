// Package notifications holds the in-process queue of transient
// user-facing messages. Entries self-expire when added with a positive
// duration; removal and clearing are synchronous and idempotent.
package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/enums"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// DefaultDuration is applied by the convenience helpers.
const DefaultDuration = 5 * time.Second

// Notification is a single queued message.
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	Type      enums.NotificationType `json:"type"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	// Duration is how long the entry stays queued; zero means it stays
	// until removed explicitly.
	Duration time.Duration `json:"duration,omitempty"`
}

// Mirror publishes queue entries to an external read surface. The queue
// never depends on mirror success.
type Mirror interface {
	Publish(ctx context.Context, notification Notification)
	Retract(ctx context.Context, id uuid.UUID)
}

// Queue is an explicitly-owned notification queue.
type Queue struct {
	logg   *logger.Logger
	mirror Mirror

	mu     sync.Mutex
	items  []Notification
	timers map[uuid.UUID]*time.Timer
	closed bool
}

// Option customizes a Queue.
type Option func(*Queue)

// WithMirror attaches an external mirror.
func WithMirror(mirror Mirror) Option {
	return func(q *Queue) { q.mirror = mirror }
}

// NewQueue constructs an empty queue.
func NewQueue(logg *logger.Logger, opts ...Option) *Queue {
	q := &Queue{
		logg:   logg,
		timers: make(map[uuid.UUID]*time.Timer),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add appends a notification and returns it. A positive duration
// schedules removal of exactly this entry; the timer is not cancelled
// on manual removal and fires as a no-op. After Close the entry is
// dropped and the zero Notification is returned.
func (q *Queue) Add(ntype enums.NotificationType, message string, duration time.Duration) Notification {
	notification := Notification{
		ID:        uuid.New(),
		Type:      ntype,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Duration:  duration,
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Notification{}
	}
	q.items = append(q.items, notification)
	if duration > 0 {
		id := notification.ID
		q.timers[id] = time.AfterFunc(duration, func() { q.Remove(id) })
	}
	q.mu.Unlock()

	if q.mirror != nil {
		q.mirror.Publish(context.Background(), notification)
	}
	return notification
}

// Success queues a success message with the default duration.
func (q *Queue) Success(message string) Notification {
	return q.Add(enums.NotificationTypeSuccess, message, DefaultDuration)
}

// Error queues an error message. Errors stay until dismissed.
func (q *Queue) Error(message string) Notification {
	return q.Add(enums.NotificationTypeError, message, 0)
}

// Warning queues a warning message with the default duration.
func (q *Queue) Warning(message string) Notification {
	return q.Add(enums.NotificationTypeWarning, message, DefaultDuration)
}

// Info queues an info message with the default duration.
func (q *Queue) Info(message string) Notification {
	return q.Add(enums.NotificationTypeInfo, message, DefaultDuration)
}

// Remove drops the entry with the given id. Removing an absent id is a
// no-op.
func (q *Queue) Remove(id uuid.UUID) {
	q.mu.Lock()
	removed := false
	for i := range q.items {
		if q.items[i].ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			removed = true
			break
		}
	}
	delete(q.timers, id)
	q.mu.Unlock()

	if removed && q.mirror != nil {
		q.mirror.Retract(context.Background(), id)
	}
}

// Clear drops every entry.
func (q *Queue) Clear() {
	q.mu.Lock()
	cleared := q.items
	q.items = nil
	q.timers = make(map[uuid.UUID]*time.Timer)
	q.mu.Unlock()

	if q.mirror != nil {
		for _, notification := range cleared {
			q.mirror.Retract(context.Background(), notification.ID)
		}
	}
}

// Items returns a copy of the queued entries in insertion order.
func (q *Queue) Items() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len reports the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops outstanding expiry timers and rejects further adds.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
}
