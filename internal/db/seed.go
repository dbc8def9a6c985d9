package db

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Moods []struct {
		Mood                types.Mood       `yaml:"mood"`
		Emoji               string           `yaml:"emoji"`
		Label               string           `yaml:"label"`
		Description         string           `yaml:"description"`
		PreferredCategories []types.Category `yaml:"preferred_categories"`
		ExcludeCategories   []types.Category `yaml:"exclude_categories"`
	} `yaml:"moods"`
	Benefits []struct {
		Mood     types.Mood      `yaml:"mood"`
		ItemID   *string         `yaml:"item_id"`
		Category *types.Category `yaml:"category"`
		Text     string          `yaml:"text"`
	} `yaml:"benefits"`
}

// Seed creates the fixed mood definitions, the default feedback config and
// the starter benefit copy on first boot. Re-running against a populated
// database is a no-op.
func Seed(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	defRepo := moodrepos.NewDefinitionRepo(db, log)
	benefitRepo := moodrepos.NewBenefitRepo(db, log)
	cfgRepo := feedbackrepos.NewConfigRepo(db, log)

	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	n, err := defRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count mood definitions: %w", err)
	}
	if n == 0 {
		defs := make([]*types.MoodDefinition, 0, len(file.Moods))
		for _, m := range file.Moods {
			if !m.Mood.Valid() {
				return fmt.Errorf("seed file: unknown mood %q", m.Mood)
			}
			preferred, err := json.Marshal(m.PreferredCategories)
			if err != nil {
				return err
			}
			excluded, err := json.Marshal(m.ExcludeCategories)
			if err != nil {
				return err
			}
			defs = append(defs, &types.MoodDefinition{
				Mood:                m.Mood,
				Emoji:               m.Emoji,
				Label:               m.Label,
				Description:         m.Description,
				PreferredCategories: datatypes.JSON(preferred),
				ExcludeCategories:   datatypes.JSON(excluded),
				IsActive:            true,
			})
		}
		if _, err := defRepo.Create(ctx, nil, defs); err != nil {
			return fmt.Errorf("seed mood definitions: %w", err)
		}
		log.Info("Seeded mood definitions", "count", len(defs))
	}

	if _, err := cfgRepo.Get(ctx, nil); err != nil {
		if err != feedbackrepos.ErrConfigNotFound {
			return fmt.Errorf("read feedback config: %w", err)
		}
		if err := cfgRepo.Create(ctx, nil, types.DefaultFeedbackConfig()); err != nil {
			return fmt.Errorf("seed feedback config: %w", err)
		}
		log.Info("Seeded default feedback config")
	}

	bn, err := benefitRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("count mood benefits: %w", err)
	}
	if bn == 0 {
		benefits := make([]*types.MoodBenefit, 0, len(file.Benefits))
		for _, b := range file.Benefits {
			benefits = append(benefits, &types.MoodBenefit{
				ID:       uuid.New(),
				Mood:     b.Mood,
				ItemID:   b.ItemID,
				Category: b.Category,
				Text:     b.Text,
			})
		}
		if err := benefitRepo.Upsert(ctx, nil, benefits); err != nil {
			return fmt.Errorf("seed mood benefits: %w", err)
		}
		log.Info("Seeded mood benefits", "count", len(benefits))
	}

	return nil
}
