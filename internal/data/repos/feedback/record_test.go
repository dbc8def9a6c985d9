package feedback

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func TestRecordRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewRecordRepo(db, testutil.Logger(t))

	testutil.SeedRecord(t, ctx, tx, types.MoodStressed, types.OutcomeImproved, "Berry Smoothie")
	testutil.SeedRecord(t, ctx, tx, types.MoodStressed, types.OutcomeWorse, "Double Burger")
	testutil.SeedRecord(t, ctx, tx, types.MoodHappy, types.OutcomeImproved, "Margherita")

	rec, err := repo.Append(ctx, tx, &types.FeedbackRecord{
		OrderID:      "order-42",
		Mood:         types.MoodStressed,
		Outcome:      types.OutcomeImproved,
		ItemsOrdered: datatypes.JSON(`["Berry Smoothie","Chamomile Tea"]`),
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("Append: missing generated id")
	}

	all, err := repo.ListByMood(ctx, tx, types.MoodStressed, 0)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListByMood: err=%v len=%d", err, len(all))
	}

	improved, err := repo.ListByMoodAndOutcome(ctx, tx, types.MoodStressed, types.OutcomeImproved, 0)
	if err != nil || len(improved) != 2 {
		t.Fatalf("ListByMoodAndOutcome: err=%v len=%d", err, len(improved))
	}
	for _, r := range improved {
		if r.Outcome != types.OutcomeImproved {
			t.Fatalf("outcome filter leaked: %+v", r)
		}
	}
}
