package redis

import (
	"context"
	"testing"
	"time"
)

func TestMemoryPromptStore(t *testing.T) {
	base := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store := &memoryPromptStore{
		readyAt: map[string]time.Time{},
		now:     func() time.Time { return clock },
	}
	ctx := context.Background()

	armed, due, err := store.Due(ctx, "order-1")
	if err != nil || armed || due {
		t.Fatalf("unarmed order: armed=%v due=%v err=%v", armed, due, err)
	}

	if err := store.Arm(ctx, "order-1", 30*time.Minute); err != nil {
		t.Fatalf("Arm: %v", err)
	}
	if err := store.Arm(ctx, "", time.Minute); err == nil {
		t.Fatal("Arm with empty order id: want error")
	}

	armed, due, _ = store.Due(ctx, "order-1")
	if !armed || due {
		t.Fatalf("before delay: armed=%v due=%v, want armed not due", armed, due)
	}

	clock = base.Add(29 * time.Minute)
	if _, due, _ = store.Due(ctx, "order-1"); due {
		t.Fatal("due one minute early")
	}

	clock = base.Add(30 * time.Minute)
	armed, due, _ = store.Due(ctx, "order-1")
	if !armed || !due {
		t.Fatalf("at delay: armed=%v due=%v, want both true", armed, due)
	}

	// Past the retention window the prompt is forgotten entirely.
	clock = base.Add(30*time.Minute + promptRetention + time.Second)
	armed, due, _ = store.Due(ctx, "order-1")
	if armed || due {
		t.Fatalf("after retention: armed=%v due=%v, want forgotten", armed, due)
	}
}
