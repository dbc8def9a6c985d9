package mood

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

var ErrDefinitionNotFound = errors.New("mood definition not found")

type DefinitionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, defs []*types.MoodDefinition) ([]*types.MoodDefinition, error)
	GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) (*types.MoodDefinition, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.MoodDefinition, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.MoodDefinition, error)
	Update(ctx context.Context, tx *gorm.DB, def *types.MoodDefinition) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type definitionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDefinitionRepo(db *gorm.DB, baseLog *logger.Logger) DefinitionRepo {
	return &definitionRepo{db: db, log: baseLog.With("repo", "MoodDefinitionRepo")}
}

func (r *definitionRepo) Create(ctx context.Context, tx *gorm.DB, defs []*types.MoodDefinition) ([]*types.MoodDefinition, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(defs) == 0 {
		return []*types.MoodDefinition{}, nil
	}
	if err := t.WithContext(ctx).Create(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *definitionRepo) GetByMood(ctx context.Context, tx *gorm.DB, mood types.Mood) (*types.MoodDefinition, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var def types.MoodDefinition
	if err := t.WithContext(ctx).Where("mood = ?", mood).First(&def).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDefinitionNotFound
		}
		return nil, err
	}
	return &def, nil
}

func (r *definitionRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.MoodDefinition, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MoodDefinition
	if err := t.WithContext(ctx).
		Where("is_active = ?", true).
		Order("mood ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *definitionRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.MoodDefinition, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MoodDefinition
	if err := t.WithContext(ctx).Order("mood ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *definitionRepo) Update(ctx context.Context, tx *gorm.DB, def *types.MoodDefinition) error {
	t := tx
	if t == nil {
		t = r.db
	}
	res := t.WithContext(ctx).
		Model(&types.MoodDefinition{}).
		Where("mood = ?", def.Mood).
		Select("emoji", "label", "description", "preferred_categories", "exclude_categories", "price_min", "price_max", "is_active", "updated_at").
		Updates(def)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDefinitionNotFound
	}
	return nil
}

func (r *definitionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&types.MoodDefinition{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
