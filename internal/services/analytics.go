package services

import (
	"context"

	"gorm.io/gorm"

	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// AnalyticsService is the outcome-tracking subsystem: it ingests shown /
// ordered / feedback events as atomic counter increments and derives the
// per-mood analytics view on read. Derived values are never stored, so they
// can never go stale against the counters or the current weights.
type AnalyticsService interface {
	RecordShown(ctx context.Context, mood types.Mood, itemIDs []string) error
	RecordOrdered(ctx context.Context, mood types.Mood, itemIDs []string) error
	RecordFeedback(ctx context.Context, mood types.Mood, outcome types.Outcome) error
	Reset(ctx context.Context, mood *types.Mood) error
	Analytics(ctx context.Context, mood types.Mood) (*types.MoodAnalytics, error)
	AllAnalytics(ctx context.Context) ([]*types.MoodAnalytics, error)
	EffectiveFeedbackEnabled(ctx context.Context, mood types.Mood) (bool, error)
}

type analyticsService struct {
	db        *gorm.DB
	log       *logger.Logger
	stats     moodrepos.StatisticRepo
	itemStats moodrepos.ItemStatisticRepo
	config    ConfigService
}

func NewAnalyticsService(db *gorm.DB, log *logger.Logger, stats moodrepos.StatisticRepo, itemStats moodrepos.ItemStatisticRepo, config ConfigService) AnalyticsService {
	return &analyticsService{
		db:        db,
		log:       log.With("service", "AnalyticsService"),
		stats:     stats,
		itemStats: itemStats,
		config:    config,
	}
}

func (s *analyticsService) RecordShown(ctx context.Context, mood types.Mood, itemIDs []string) error {
	if !mood.Valid() {
		return ErrMoodNotFound
	}
	// One exposure event per call, regardless of how many items it showed.
	if err := s.stats.IncrementShown(ctx, nil, mood, 1); err != nil {
		return err
	}
	if err := s.itemStats.IncrementShown(ctx, nil, mood, itemIDs); err != nil {
		// Aggregate already counted; per-item rows are a scoring refinement,
		// not a correctness requirement.
		s.log.Warn("per-item shown increment failed", "mood", mood, "error", err)
	}
	return nil
}

func (s *analyticsService) RecordOrdered(ctx context.Context, mood types.Mood, itemIDs []string) error {
	if !mood.Valid() {
		return ErrMoodNotFound
	}
	if err := s.stats.IncrementOrdered(ctx, nil, mood, 1); err != nil {
		return err
	}
	if err := s.itemStats.IncrementOrdered(ctx, nil, mood, itemIDs); err != nil {
		s.log.Warn("per-item ordered increment failed", "mood", mood, "error", err)
	}
	return nil
}

func (s *analyticsService) RecordFeedback(ctx context.Context, mood types.Mood, outcome types.Outcome) error {
	if !mood.Valid() {
		return ErrMoodNotFound
	}
	if !outcome.Valid() {
		return ErrValidation
	}
	return s.stats.IncrementFeedback(ctx, nil, mood, outcome)
}

func (s *analyticsService) Reset(ctx context.Context, mood *types.Mood) error {
	if mood != nil {
		if !mood.Valid() {
			return ErrMoodNotFound
		}
		if err := s.stats.Reset(ctx, nil, *mood); err != nil {
			return err
		}
		if err := s.itemStats.Reset(ctx, nil, *mood); err != nil {
			return err
		}
		s.log.Info("Statistics reset", "mood", *mood)
		return nil
	}
	if err := s.stats.ResetAll(ctx, nil); err != nil {
		return err
	}
	if err := s.itemStats.ResetAll(ctx, nil); err != nil {
		return err
	}
	s.log.Info("Statistics reset", "mood", "all")
	return nil
}

func (s *analyticsService) Analytics(ctx context.Context, mood types.Mood) (*types.MoodAnalytics, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	stat, err := s.stats.Get(ctx, nil, mood)
	if err != nil {
		return nil, err
	}
	return deriveAnalytics(stat, cfg), nil
}

func (s *analyticsService) AllAnalytics(ctx context.Context) ([]*types.MoodAnalytics, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.stats.ListAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	byMood := make(map[types.Mood]*types.MoodStatistic, len(rows))
	for _, row := range rows {
		byMood[row.Mood] = row
	}
	out := make([]*types.MoodAnalytics, 0, len(types.AllMoods))
	for _, mood := range types.AllMoods {
		stat, ok := byMood[mood]
		if !ok {
			stat = &types.MoodStatistic{Mood: mood}
		}
		out = append(out, deriveAnalytics(stat, cfg))
	}
	return out, nil
}

func (s *analyticsService) EffectiveFeedbackEnabled(ctx context.Context, mood types.Mood) (bool, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return false, err
	}
	if cfg.FeedbackEnabled {
		return true, nil
	}
	if !cfg.AutoEnableFeedback {
		return false, nil
	}
	stat, err := s.stats.Get(ctx, nil, mood)
	if err != nil {
		return false, err
	}
	return stat.TotalShown >= cfg.BaselineThreshold, nil
}

// deriveAnalytics computes every derived field from the raw counters and the
// current weight snapshot. Rates are expressed 0-100 and clamped; a zero
// denominator yields 0, never NaN.
func deriveAnalytics(stat *types.MoodStatistic, cfg types.FeedbackConfig) *types.MoodAnalytics {
	orderRate := ratePercent(stat.TotalOrdered, stat.TotalShown)
	improvementRate := ratePercent(stat.ImprovedCount, stat.FeedbackCount)
	historical := clampPercent(cfg.OrderRateWeight*orderRate + cfg.FeedbackRateWeight*improvementRate)

	progress := 100.0
	reached := true
	if cfg.BaselineThreshold > 0 {
		progress = clampPercent(100 * float64(stat.TotalShown) / float64(cfg.BaselineThreshold))
		reached = stat.TotalShown >= cfg.BaselineThreshold
	}

	return &types.MoodAnalytics{
		Mood:             stat.Mood,
		TotalShown:       stat.TotalShown,
		TotalOrdered:     stat.TotalOrdered,
		OrderRate:        orderRate,
		FeedbackCount:    stat.FeedbackCount,
		ImprovedCount:    stat.ImprovedCount,
		SameCount:        stat.SameCount,
		WorseCount:       stat.WorseCount,
		ImprovementRate:  improvementRate,
		HistoricalScore:  historical,
		BaselineReached:  reached,
		BaselineProgress: progress,
		FeedbackEnabled:  cfg.FeedbackEnabled || (cfg.AutoEnableFeedback && reached),
	}
}

func ratePercent(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return clampPercent(100 * float64(numerator) / float64(denominator))
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
