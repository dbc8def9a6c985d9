package mood

import (
	"context"
	"testing"

	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func TestBenefitRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewBenefitRepo(db, testutil.Logger(t))

	itemID := "item-9"
	smoothie := types.CategorySmoothie
	seeded := testutil.SeedBenefit(t, ctx, tx, types.MoodSad, &itemID, nil, "lifts the afternoon")
	testutil.SeedBenefit(t, ctx, tx, types.MoodSad, nil, &smoothie, "fruit sugar, gently")
	testutil.SeedBenefit(t, ctx, tx, types.MoodTired, nil, nil, "other mood")

	rows, err := repo.GetByMood(ctx, tx, types.MoodSad)
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByMood: err=%v len=%d", err, len(rows))
	}

	seeded.Text = "lifts the whole day"
	if err := repo.Upsert(ctx, tx, []*types.MoodBenefit{seeded}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	rows, err = repo.GetByMood(ctx, tx, types.MoodSad)
	if err != nil || len(rows) != 2 {
		t.Fatalf("GetByMood after upsert: err=%v len=%d", err, len(rows))
	}
	found := false
	for _, b := range rows {
		if b.ID == seeded.ID && b.Text == "lifts the whole day" {
			found = true
		}
	}
	if !found {
		t.Fatal("Upsert did not update text in place")
	}

	n, err := repo.Count(ctx, tx)
	if err != nil || n != 3 {
		t.Fatalf("Count: err=%v n=%d", err, n)
	}
}
