package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	redisclient "github.com/feelbite/moodmenu-backend/internal/clients/redis"
	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// FeedbackService is the reflection recorder: it validates and persists
// post-order mood-outcome reflections and feeds them into the statistics
// counters. Reflections are immutable once recorded.
type FeedbackService interface {
	Record(ctx context.Context, in RecordFeedbackInput) (*types.FeedbackRecord, error)
	ArmPrompt(ctx context.Context, orderID string)
	PromptState(ctx context.Context, orderID string, mood types.Mood) (*PromptState, error)
}

type RecordFeedbackInput struct {
	OrderID      string        `json:"order_id"`
	Mood         types.Mood    `json:"mood"`
	Outcome      types.Outcome `json:"outcome"`
	ItemsOrdered []string      `json:"items"`
}

// PromptState tells the caller whether to surface the reflection prompt for
// an order right now.
type PromptState struct {
	Armed   bool `json:"armed"`
	Due     bool `json:"due"`
	Enabled bool `json:"enabled"`
}

type feedbackService struct {
	db        *gorm.DB
	log       *logger.Logger
	defs      moodrepos.DefinitionRepo
	records   feedbackrepos.RecordRepo
	analytics AnalyticsService
	config    ConfigService
	prompts   redisclient.PromptStore
}

func NewFeedbackService(db *gorm.DB, log *logger.Logger, defs moodrepos.DefinitionRepo, records feedbackrepos.RecordRepo, analytics AnalyticsService, config ConfigService, prompts redisclient.PromptStore) FeedbackService {
	return &feedbackService{
		db:        db,
		log:       log.With("service", "FeedbackService"),
		defs:      defs,
		records:   records,
		analytics: analytics,
		config:    config,
		prompts:   prompts,
	}
}

func (s *feedbackService) Record(ctx context.Context, in RecordFeedbackInput) (*types.FeedbackRecord, error) {
	if in.OrderID == "" {
		return nil, fmt.Errorf("%w: order_id required", ErrValidation)
	}
	if !in.Mood.Valid() {
		return nil, ErrMoodNotFound
	}
	if !in.Outcome.Valid() {
		return nil, fmt.Errorf("%w: outcome must be improved, same or worse", ErrValidation)
	}
	if _, err := s.defs.GetByMood(ctx, nil, in.Mood); err != nil {
		return nil, err
	}

	items := in.ItemsOrdered
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Append(ctx, nil, &types.FeedbackRecord{
		OrderID:      in.OrderID,
		Mood:         in.Mood,
		Outcome:      in.Outcome,
		ItemsOrdered: datatypes.JSON(raw),
	})
	if err != nil {
		return nil, err
	}

	if err := s.analytics.RecordFeedback(ctx, in.Mood, in.Outcome); err != nil {
		// The reflection is durably recorded; the counter catches up on the
		// next aggregation pass over the log if this ever happens.
		s.log.Warn("feedback counter increment failed", "mood", in.Mood, "error", err)
	}

	s.log.Info("Reflection recorded", "mood", in.Mood, "outcome", in.Outcome)
	return rec, nil
}

// ArmPrompt starts the reflection-delay timer for an order. Failures only
// cost a prompt, never an order, so they are logged and swallowed.
func (s *feedbackService) ArmPrompt(ctx context.Context, orderID string) {
	if orderID == "" || s.prompts == nil {
		return
	}
	cfg, err := s.config.Get(ctx)
	if err != nil {
		s.log.Warn("prompt not armed, config unavailable", "error", err)
		return
	}
	delay := time.Duration(cfg.ReflectionDelayMinutes) * time.Minute
	if err := s.prompts.Arm(ctx, orderID, delay); err != nil {
		s.log.Warn("prompt not armed", "order_id", orderID, "error", err)
	}
}

func (s *feedbackService) PromptState(ctx context.Context, orderID string, mood types.Mood) (*PromptState, error) {
	enabled := false
	if mood.Valid() {
		var err error
		enabled, err = s.analytics.EffectiveFeedbackEnabled(ctx, mood)
		if err != nil {
			return nil, err
		}
	}
	state := &PromptState{Enabled: enabled}
	if s.prompts == nil {
		return state, nil
	}
	armed, due, err := s.prompts.Due(ctx, orderID)
	if err != nil {
		// Prompt scheduling is best-effort; report "not due" instead of
		// failing the poll.
		s.log.Warn("prompt lookup failed", "order_id", orderID, "error", err)
		return state, nil
	}
	state.Armed = armed
	state.Due = due
	return state, nil
}
