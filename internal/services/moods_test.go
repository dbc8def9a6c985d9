package services

import (
	"context"
	"errors"
	"testing"

	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func TestMoodServiceUpdate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedDefinition(t, ctx, tx, types.MoodTired,
		[]types.Category{types.CategoryHotDrinks}, nil)
	log := testutil.Logger(t)
	svc := NewMoodService(tx, log, moodrepos.NewDefinitionRepo(tx, log), moodrepos.NewBenefitRepo(tx, log))

	label := "Low energy"
	prefs := []types.Category{types.CategorySmoothie, types.CategoryValueMeal}
	inactive := false
	def, err := svc.Update(ctx, types.MoodTired, UpdateMoodInput{
		Label:               &label,
		PreferredCategories: &prefs,
		IsActive:            &inactive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if def.Label != "Low energy" || def.IsActive {
		t.Fatalf("updated definition: %+v", def)
	}
	if got := unmarshalCategories(def.PreferredCategories); len(got) != 2 || got[0] != types.CategorySmoothie {
		t.Fatalf("preferred categories = %v", got)
	}

	bogus := []types.Category{"street_food"}
	if _, err := svc.Update(ctx, types.MoodTired, UpdateMoodInput{ExcludeCategories: &bogus}); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown category accepted: %v", err)
	}

	if _, err := svc.Update(ctx, types.MoodHappy, UpdateMoodInput{Label: &label}); !errors.Is(err, moodrepos.ErrDefinitionNotFound) {
		t.Fatalf("missing definition: %v", err)
	}
}

func TestMoodServiceBenefits(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	log := testutil.Logger(t)
	svc := NewMoodService(tx, log, moodrepos.NewDefinitionRepo(tx, log), moodrepos.NewBenefitRepo(tx, log))

	itemID := "chamomile"
	soup := types.CategorySoup
	rows, err := svc.UpsertBenefits(ctx, []UpsertBenefitInput{
		{Mood: types.MoodStressed, ItemID: &itemID, Text: "Chamomile calms the nerves"},
		{Mood: types.MoodStressed, Category: &soup, Text: "Warm soups are comforting"},
	})
	if err != nil {
		t.Fatalf("UpsertBenefits: %v", err)
	}
	if len(rows) != 2 || rows[0].ID == rows[1].ID {
		t.Fatalf("rows = %+v", rows)
	}

	newText := "Chamomile tea settles a racing mind"
	if _, err := svc.UpsertBenefits(ctx, []UpsertBenefitInput{
		{ID: &rows[0].ID, Mood: types.MoodStressed, ItemID: &itemID, Text: newText},
	}); err != nil {
		t.Fatalf("UpsertBenefits replace: %v", err)
	}

	got, err := svc.ListBenefits(ctx, types.MoodStressed)
	if err != nil {
		t.Fatalf("ListBenefits: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d benefits, want 2", len(got))
	}
	found := false
	for _, b := range got {
		if b.ID == rows[0].ID && b.Text == newText {
			found = true
		}
	}
	if !found {
		t.Fatalf("replaced text not found in %+v", got)
	}

	if _, err := svc.UpsertBenefits(ctx, []UpsertBenefitInput{
		{Mood: types.MoodStressed, Text: "no target"},
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("benefit without target accepted: %v", err)
	}
}
