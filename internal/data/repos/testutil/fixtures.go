package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

func CategoriesJSON(tb testing.TB, cats ...types.Category) datatypes.JSON {
	tb.Helper()
	raw, err := json.Marshal(cats)
	if err != nil {
		tb.Fatalf("marshal categories: %v", err)
	}
	return datatypes.JSON(raw)
}

func SeedDefinition(tb testing.TB, ctx context.Context, tx *gorm.DB, mood types.Mood, preferred, excluded []types.Category) *types.MoodDefinition {
	tb.Helper()
	def := &types.MoodDefinition{
		Mood:                mood,
		Emoji:               ":)",
		Label:               string(mood),
		PreferredCategories: CategoriesJSON(tb, preferred...),
		ExcludeCategories:   CategoriesJSON(tb, excluded...),
		IsActive:            true,
	}
	if err := tx.WithContext(ctx).Create(def).Error; err != nil {
		tb.Fatalf("seed mood definition: %v", err)
	}
	return def
}

func SeedConfig(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.FeedbackConfig {
	tb.Helper()
	cfg := types.DefaultFeedbackConfig()
	if err := tx.WithContext(ctx).Create(cfg).Error; err != nil {
		tb.Fatalf("seed feedback config: %v", err)
	}
	return cfg
}

func SeedBenefit(tb testing.TB, ctx context.Context, tx *gorm.DB, mood types.Mood, itemID *string, category *types.Category, text string) *types.MoodBenefit {
	tb.Helper()
	b := &types.MoodBenefit{
		ID:       uuid.New(),
		Mood:     mood,
		ItemID:   itemID,
		Category: category,
		Text:     text,
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed mood benefit: %v", err)
	}
	return b
}

func SeedRecord(tb testing.TB, ctx context.Context, tx *gorm.DB, mood types.Mood, outcome types.Outcome, items ...string) *types.FeedbackRecord {
	tb.Helper()
	raw, err := json.Marshal(items)
	if err != nil {
		tb.Fatalf("marshal items: %v", err)
	}
	rec := &types.FeedbackRecord{
		ID:           uuid.New(),
		OrderID:      uuid.NewString(),
		Mood:         mood,
		Outcome:      outcome,
		ItemsOrdered: datatypes.JSON(raw),
	}
	if err := tx.WithContext(ctx).Create(rec).Error; err != nil {
		tb.Fatalf("seed feedback record: %v", err)
	}
	return rec
}
