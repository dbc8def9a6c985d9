package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// MoodService is the mood definition store: stable source of the preferred
// and excluded category sets plus the active flag, and of the curated
// benefit copy attached to moods.
type MoodService interface {
	Get(ctx context.Context, mood types.Mood) (*types.MoodDefinition, error)
	ListActive(ctx context.Context) ([]*types.MoodDefinition, error)
	ListAll(ctx context.Context) ([]*types.MoodDefinition, error)
	Update(ctx context.Context, mood types.Mood, in UpdateMoodInput) (*types.MoodDefinition, error)
	ListBenefits(ctx context.Context, mood types.Mood) ([]*types.MoodBenefit, error)
	UpsertBenefits(ctx context.Context, in []UpsertBenefitInput) ([]*types.MoodBenefit, error)
}

// UpdateMoodInput carries the admin-editable fields; nil means "unchanged".
type UpdateMoodInput struct {
	Emoji               *string           `json:"emoji"`
	Label               *string           `json:"label"`
	Description         *string           `json:"description"`
	PreferredCategories *[]types.Category `json:"preferred_categories"`
	ExcludeCategories   *[]types.Category `json:"exclude_categories"`
	PriceMin            *float64          `json:"price_min"`
	PriceMax            *float64          `json:"price_max"`
	IsActive            *bool             `json:"is_active"`
}

// UpsertBenefitInput creates a new benefit row when ID is nil and replaces
// the text of an existing one otherwise.
type UpsertBenefitInput struct {
	ID       *uuid.UUID      `json:"id"`
	Mood     types.Mood      `json:"mood"`
	ItemID   *string         `json:"item_id"`
	Category *types.Category `json:"category"`
	Text     string          `json:"text"`
}

type moodService struct {
	db       *gorm.DB
	log      *logger.Logger
	defs     moodrepos.DefinitionRepo
	benefits moodrepos.BenefitRepo
}

func NewMoodService(db *gorm.DB, log *logger.Logger, defs moodrepos.DefinitionRepo, benefits moodrepos.BenefitRepo) MoodService {
	return &moodService{db: db, log: log.With("service", "MoodService"), defs: defs, benefits: benefits}
}

func (s *moodService) Get(ctx context.Context, mood types.Mood) (*types.MoodDefinition, error) {
	return s.defs.GetByMood(ctx, nil, mood)
}

func (s *moodService) ListActive(ctx context.Context) ([]*types.MoodDefinition, error) {
	return s.defs.ListActive(ctx, nil)
}

func (s *moodService) ListAll(ctx context.Context) ([]*types.MoodDefinition, error) {
	return s.defs.ListAll(ctx, nil)
}

func (s *moodService) Update(ctx context.Context, mood types.Mood, in UpdateMoodInput) (*types.MoodDefinition, error) {
	def, err := s.defs.GetByMood(ctx, nil, mood)
	if err != nil {
		return nil, err
	}

	if in.Emoji != nil {
		def.Emoji = *in.Emoji
	}
	if in.Label != nil {
		def.Label = *in.Label
	}
	if in.Description != nil {
		def.Description = *in.Description
	}
	if in.PreferredCategories != nil {
		raw, err := marshalCategories(*in.PreferredCategories)
		if err != nil {
			return nil, err
		}
		def.PreferredCategories = raw
	}
	if in.ExcludeCategories != nil {
		raw, err := marshalCategories(*in.ExcludeCategories)
		if err != nil {
			return nil, err
		}
		def.ExcludeCategories = raw
	}
	if in.PriceMin != nil {
		def.PriceMin = in.PriceMin
	}
	if in.PriceMax != nil {
		def.PriceMax = in.PriceMax
	}
	if in.IsActive != nil {
		def.IsActive = *in.IsActive
	}

	if err := s.defs.Update(ctx, nil, def); err != nil {
		return nil, err
	}
	s.log.Info("Mood definition updated", "mood", mood)
	return def, nil
}

func (s *moodService) ListBenefits(ctx context.Context, mood types.Mood) ([]*types.MoodBenefit, error) {
	if !mood.Valid() {
		return nil, ErrMoodNotFound
	}
	return s.benefits.GetByMood(ctx, nil, mood)
}

func (s *moodService) UpsertBenefits(ctx context.Context, in []UpsertBenefitInput) ([]*types.MoodBenefit, error) {
	rows := make([]*types.MoodBenefit, 0, len(in))
	for _, b := range in {
		if !b.Mood.Valid() {
			return nil, ErrMoodNotFound
		}
		if b.Text == "" {
			return nil, fmt.Errorf("%w: benefit text required", ErrValidation)
		}
		hasItem := b.ItemID != nil && *b.ItemID != ""
		if !hasItem && b.Category == nil {
			return nil, fmt.Errorf("%w: benefit needs an item_id or a category", ErrValidation)
		}
		if b.Category != nil && !b.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *b.Category)
		}
		row := &types.MoodBenefit{
			Mood:     b.Mood,
			ItemID:   b.ItemID,
			Category: b.Category,
			Text:     b.Text,
		}
		if b.ID != nil {
			row.ID = *b.ID
		}
		rows = append(rows, row)
	}
	if err := s.benefits.Upsert(ctx, nil, rows); err != nil {
		return nil, err
	}
	s.log.Info("Mood benefits upserted", "count", len(rows))
	return rows, nil
}

func marshalCategories(cats []types.Category) (datatypes.JSON, error) {
	for _, c := range cats {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, c)
		}
	}
	raw, err := json.Marshal(cats)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unmarshalCategories(raw datatypes.JSON) []types.Category {
	if len(raw) == 0 {
		return nil
	}
	var cats []types.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil
	}
	return cats
}
