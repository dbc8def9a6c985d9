package feedback

import (
	"context"
	"testing"

	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func TestConfigRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewConfigRepo(db, testutil.Logger(t))

	if _, err := repo.Get(ctx, tx); err != ErrConfigNotFound {
		t.Fatalf("Get before create: want ErrConfigNotFound, got %v", err)
	}

	if err := repo.Create(ctx, tx, types.DefaultFeedbackConfig()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cfg, err := repo.Get(ctx, tx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cfg.MoodBenefitWeight != 20 || cfg.BaselineThreshold != 50 || cfg.Version != 1 {
		t.Fatalf("defaults: %+v", cfg)
	}

	cfg.BaselineThreshold = 75
	cfg.FeedbackEnabled = true
	if err := repo.Replace(ctx, tx, cfg); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := repo.Get(ctx, tx)
	if err != nil {
		t.Fatalf("Get after replace: %v", err)
	}
	if got.BaselineThreshold != 75 || !got.FeedbackEnabled || got.Version != 2 {
		t.Fatalf("replace result: %+v", got)
	}

	// Stale version loses the race and reports a conflict.
	stale := *got
	stale.Version = 1
	stale.BaselineThreshold = 10
	if err := repo.Replace(ctx, tx, &stale); err == nil {
		t.Fatal("Replace with stale version: want error, got nil")
	}
}
