package redis

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// Keys outlive their due time by this much so a slow customer can still be
// prompted the next time they open the app.
const promptRetention = 48 * time.Hour

// PromptStore arms a per-order reflection timer: the prompt becomes due once
// the configured delay has elapsed since the order completed.
type PromptStore interface {
	Arm(ctx context.Context, orderID string, delay time.Duration) error
	Due(ctx context.Context, orderID string) (armed bool, due bool, err error)
}

type promptStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewPromptStore connects to REDIS_ADDR. Callers should fall back to
// NewMemoryPromptStore when the address is unset.
func NewPromptStore(log *logger.Logger) (PromptStore, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &promptStore{log: log.With("client", "RedisPromptStore"), rdb: rdb}, nil
}

func promptKey(orderID string) string {
	return "reflection:prompt:" + orderID
}

func (s *promptStore) Arm(ctx context.Context, orderID string, delay time.Duration) error {
	if orderID == "" {
		return fmt.Errorf("empty order id")
	}
	readyAt := time.Now().Add(delay).Unix()
	return s.rdb.Set(ctx, promptKey(orderID), strconv.FormatInt(readyAt, 10), delay+promptRetention).Err()
}

func (s *promptStore) Due(ctx context.Context, orderID string) (bool, bool, error) {
	raw, err := s.rdb.Get(ctx, promptKey(orderID)).Result()
	if err == goredis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	readyAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return true, false, nil
	}
	return true, time.Now().Unix() >= readyAt, nil
}

// memoryPromptStore is the single-process fallback used when no redis is
// configured.
type memoryPromptStore struct {
	mu      sync.Mutex
	readyAt map[string]time.Time
	now     func() time.Time
}

func NewMemoryPromptStore() PromptStore {
	return &memoryPromptStore{readyAt: map[string]time.Time{}, now: time.Now}
}

func (s *memoryPromptStore) Arm(_ context.Context, orderID string, delay time.Duration) error {
	if orderID == "" {
		return fmt.Errorf("empty order id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readyAt[orderID] = s.now().Add(delay)
	return nil
}

func (s *memoryPromptStore) Due(_ context.Context, orderID string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ready, ok := s.readyAt[orderID]
	if !ok {
		return false, false, nil
	}
	if s.now().Sub(ready) > promptRetention {
		delete(s.readyAt, orderID)
		return false, false, nil
	}
	return true, !s.now().Before(ready), nil
}
