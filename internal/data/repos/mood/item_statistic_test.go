package mood

import (
	"context"
	"testing"

	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func TestItemStatisticRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewItemStatisticRepo(db, testutil.Logger(t))

	if err := repo.IncrementShown(ctx, tx, types.MoodSad, []string{"item-1", "item-2"}); err != nil {
		t.Fatalf("IncrementShown: %v", err)
	}
	if err := repo.IncrementShown(ctx, tx, types.MoodSad, []string{"item-1"}); err != nil {
		t.Fatalf("IncrementShown: %v", err)
	}
	if err := repo.IncrementOrdered(ctx, tx, types.MoodSad, []string{"item-1"}); err != nil {
		t.Fatalf("IncrementOrdered: %v", err)
	}

	rows, err := repo.GetByMood(ctx, tx, types.MoodSad)
	if err != nil {
		t.Fatalf("GetByMood: %v", err)
	}
	byID := map[string]*types.ItemMoodStatistic{}
	for _, row := range rows {
		byID[row.ItemID] = row
	}
	if len(byID) != 2 {
		t.Fatalf("GetByMood: want 2 rows, got %d", len(rows))
	}
	if byID["item-1"].Shown != 2 || byID["item-1"].Ordered != 1 {
		t.Fatalf("item-1 counters: %+v", byID["item-1"])
	}
	if byID["item-2"].Shown != 1 || byID["item-2"].Ordered != 0 {
		t.Fatalf("item-2 counters: %+v", byID["item-2"])
	}

	// Empty ids are skipped, not written.
	if err := repo.IncrementShown(ctx, tx, types.MoodSad, []string{""}); err != nil {
		t.Fatalf("IncrementShown empty id: %v", err)
	}

	if err := repo.Reset(ctx, tx, types.MoodSad); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	rows, err = repo.GetByMood(ctx, tx, types.MoodSad)
	if err != nil || len(rows) != 0 {
		t.Fatalf("after reset: err=%v len=%d", err, len(rows))
	}
}
