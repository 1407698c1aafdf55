package notifications

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/enums"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func newTestQueue(opts ...Option) *Queue {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewQueue(logg, opts...)
}

func TestAddAssignsIDAndTimestamp(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	notification := q.Add(enums.NotificationTypeInfo, "hello", 0)
	if notification.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if notification.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
	if q.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", q.Len())
	}
}

func TestEntryExpiresAfterDuration(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	notification := q.Add(enums.NotificationTypeSuccess, "done", 100*time.Millisecond)

	if q.Len() != 1 {
		t.Fatal("entry must be present before expiry")
	}

	deadline := time.Now().Add(2 * time.Second)
	for q.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("entry %s did not expire", notification.ID)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestZeroDurationNeverExpires(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	q.Add(enums.NotificationTypeError, "stuck", 0)
	time.Sleep(150 * time.Millisecond)
	if q.Len() != 1 {
		t.Fatal("zero-duration entry must stay queued")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	notification := q.Add(enums.NotificationTypeInfo, "bye", 0)
	q.Remove(notification.ID)
	q.Remove(notification.ID)
	q.Remove(uuid.New())

	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestTimerFiringAfterManualRemovalIsNoOp(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	expiring := q.Add(enums.NotificationTypeInfo, "short", 50*time.Millisecond)
	q.Remove(expiring.ID)
	keeper := q.Add(enums.NotificationTypeError, "keeper", 0)

	time.Sleep(150 * time.Millisecond)

	items := q.Items()
	if len(items) != 1 || items[0].ID != keeper.ID {
		t.Fatalf("late timer must not disturb other entries: %+v", items)
	}
}

func TestClearDropsEverything(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	q.Success("a")
	q.Warning("b")
	q.Clear()

	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
	q.Clear()
}

func TestConvenienceHelpers(t *testing.T) {
	q := newTestQueue()
	defer q.Close()

	cases := []struct {
		got  Notification
		want enums.NotificationType
	}{
		{q.Success("s"), enums.NotificationTypeSuccess},
		{q.Error("e"), enums.NotificationTypeError},
		{q.Warning("w"), enums.NotificationTypeWarning},
		{q.Info("i"), enums.NotificationTypeInfo},
	}
	for _, c := range cases {
		if c.got.Type != c.want {
			t.Fatalf("expected %s, got %s", c.want, c.got.Type)
		}
	}
	if q.Error("sticky").Duration != 0 {
		t.Fatal("errors must not auto-expire")
	}
}

type recordingMirror struct {
	mu        sync.Mutex
	published []uuid.UUID
	retracted []uuid.UUID
}

func (r *recordingMirror) Publish(_ context.Context, notification Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, notification.ID)
}

func (r *recordingMirror) Retract(_ context.Context, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retracted = append(r.retracted, id)
}

func TestMirrorSeesPublishAndRetract(t *testing.T) {
	mirror := &recordingMirror{}
	q := newTestQueue(WithMirror(mirror))
	defer q.Close()

	notification := q.Add(enums.NotificationTypeInfo, "mirrored", 0)
	q.Remove(notification.ID)

	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	if len(mirror.published) != 1 || mirror.published[0] != notification.ID {
		t.Fatalf("publish not mirrored: %+v", mirror.published)
	}
	if len(mirror.retracted) != 1 || mirror.retracted[0] != notification.ID {
		t.Fatalf("retract not mirrored: %+v", mirror.retracted)
	}
}

func TestCloseStopsAcceptingEntries(t *testing.T) {
	q := newTestQueue()
	q.Close()

	dropped := q.Add(enums.NotificationTypeInfo, "late", 0)
	if q.Len() != 0 {
		t.Fatal("closed queue must reject adds")
	}
	if dropped.ID != uuid.Nil {
		t.Fatalf("dropped entry must be the zero notification, got %+v", dropped)
	}
}
