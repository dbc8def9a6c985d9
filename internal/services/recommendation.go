package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
	"github.com/feelbite/moodmenu-backend/internal/platform/logger"
)

// Historical order-rate contributes at most this many points; it is the one
// factor whose ceiling is not operator-tunable.
const orderRateMaxPoints = 10.0

// How many improved-outcome reflections to scan for the "what worked before"
// signal, and how many top items of that scan earn the bonus.
const (
	historyScanLimit = 500
	historyTopN      = 5
)

// RecommendationService ranks a caller-supplied catalog snapshot for a mood.
// Unknown or inactive moods recommend nothing rather than failing the
// request, and each scoring factor degrades to zero when its input is
// missing. Ties keep catalog order (stable sort); no secondary criterion.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, mood types.Mood, catalog []types.MenuItem) ([]types.ScoredItem, error)
}

type recommendationService struct {
	db        *gorm.DB
	log       *logger.Logger
	defs      moodrepos.DefinitionRepo
	itemStats moodrepos.ItemStatisticRepo
	benefits  moodrepos.BenefitRepo
	records   feedbackrepos.RecordRepo
	config    ConfigService
	timectx   TimeContextService
	analytics AnalyticsService
	now       func() time.Time

	// shownHook, when set, replaces the detached goroutine that records the
	// shown event. Tests use it to observe the side effect synchronously.
	shownHook func(mood types.Mood, itemIDs []string)
}

func NewRecommendationService(
	db *gorm.DB,
	log *logger.Logger,
	defs moodrepos.DefinitionRepo,
	itemStats moodrepos.ItemStatisticRepo,
	benefits moodrepos.BenefitRepo,
	records feedbackrepos.RecordRepo,
	config ConfigService,
	timectx TimeContextService,
	analytics AnalyticsService,
) RecommendationService {
	return &recommendationService{
		db:        db,
		log:       log.With("service", "RecommendationService"),
		defs:      defs,
		itemStats: itemStats,
		benefits:  benefits,
		records:   records,
		config:    config,
		timectx:   timectx,
		analytics: analytics,
		now:       time.Now,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, mood types.Mood, catalog []types.MenuItem) ([]types.ScoredItem, error) {
	def, err := s.defs.GetByMood(ctx, nil, mood)
	if err != nil {
		if errors.Is(err, moodrepos.ErrDefinitionNotFound) {
			return []types.ScoredItem{}, nil
		}
		return nil, err
	}
	if !def.IsActive {
		return []types.ScoredItem{}, nil
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		// Weights unavailable: score with the shipped defaults rather than
		// failing the whole recommendation.
		s.log.Warn("config unavailable, scoring with defaults", "error", err)
		cfg = *types.DefaultFeedbackConfig()
	}

	excluded := categorySet(unmarshalCategories(def.ExcludeCategories))
	preferred := categorySet(unmarshalCategories(def.PreferredCategories))

	candidates := make([]types.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		if !item.Available {
			continue
		}
		if _, out := excluded[item.Category]; out {
			continue
		}
		candidates = append(candidates, item)
	}
	if len(candidates) == 0 {
		return []types.ScoredItem{}, nil
	}

	inputs := s.loadScoringInputs(ctx, mood)
	tctx := s.timectx.Resolve(s.now())

	scored := make([]types.ScoredItem, 0, len(candidates))
	for _, item := range candidates {
		scored = append(scored, scoreItem(item, cfg, preferred, def, inputs, tctx))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > types.MaxRecommendations {
		scored = scored[:types.MaxRecommendations]
	}

	shownIDs := make([]string, 0, len(scored))
	for _, sc := range scored {
		shownIDs = append(shownIDs, sc.Item.ID)
	}
	s.emitShown(mood, shownIDs)

	return scored, nil
}

// scoringInputs are the per-mood lookups feeding the history, benefit and
// order-rate factors. Any of them may be empty; that only zeroes the factor.
type scoringInputs struct {
	itemStats     map[string]*types.ItemMoodStatistic
	benefitByItem map[string]string
	benefitByCat  map[types.Category]string
	topImproved   map[string]struct{}
}

func (s *recommendationService) loadScoringInputs(ctx context.Context, mood types.Mood) scoringInputs {
	in := scoringInputs{
		itemStats:     map[string]*types.ItemMoodStatistic{},
		benefitByItem: map[string]string{},
		benefitByCat:  map[types.Category]string{},
		topImproved:   map[string]struct{}{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.itemStats.GetByMood(gctx, nil, mood)
		if err != nil {
			s.log.Warn("item stats unavailable", "mood", mood, "error", err)
			return nil
		}
		for _, row := range rows {
			in.itemStats[row.ItemID] = row
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.benefits.GetByMood(gctx, nil, mood)
		if err != nil {
			s.log.Warn("mood benefits unavailable", "mood", mood, "error", err)
			return nil
		}
		for _, b := range rows {
			switch {
			case b.ItemID != nil && *b.ItemID != "":
				in.benefitByItem[*b.ItemID] = b.Text
			case b.Category != nil:
				in.benefitByCat[*b.Category] = b.Text
			}
		}
		return nil
	})
	g.Go(func() error {
		recs, err := s.records.ListByMoodAndOutcome(gctx, nil, mood, types.OutcomeImproved, historyScanLimit)
		if err != nil {
			s.log.Warn("feedback history unavailable", "mood", mood, "error", err)
			return nil
		}
		for _, name := range topImprovedNames(recs, historyTopN) {
			in.topImproved[name] = struct{}{}
		}
		return nil
	})
	_ = g.Wait()
	return in
}

func scoreItem(item types.MenuItem, cfg types.FeedbackConfig, preferred map[types.Category]struct{}, def *types.MoodDefinition, in scoringInputs, tctx types.TimeContext) types.ScoredItem {
	sc := types.ScoredItem{Item: item}

	if stat, ok := in.itemStats[item.ID]; ok && stat.Shown > 0 {
		rate := float64(stat.Ordered) / float64(stat.Shown)
		if rate > 1 {
			rate = 1
		}
		sc.OrderRate = rate * orderRateMaxPoints
	}

	if text, ok := in.benefitByItem[item.ID]; ok {
		sc.MoodBenefit = cfg.MoodBenefitWeight
		sc.BenefitText = text
	} else if text, ok := in.benefitByCat[item.Category]; ok {
		sc.MoodBenefit = cfg.MoodBenefitWeight
		sc.BenefitText = text
	}

	if _, ok := preferred[item.Category]; ok {
		sc.Preferred = cfg.PreferredCategoryWeight
	}

	if _, ok := in.topImproved[item.Name]; ok {
		sc.Historical = cfg.HistoricalDataWeight
	}

	if item.Featured {
		sc.Featured = cfg.FeaturedItemWeight
	}

	if def.PriceMin != nil || def.PriceMax != nil {
		inRange := true
		if def.PriceMin != nil && item.Price < *def.PriceMin {
			inRange = false
		}
		if def.PriceMax != nil && item.Price > *def.PriceMax {
			inRange = false
		}
		if inRange {
			sc.PriceRange = cfg.PriceRangeWeight
		}
	}

	sc.Context = contextPoints(item.Category, tctx, cfg.TimeOfDayWeight)

	sc.Score = sc.OrderRate + sc.MoodBenefit + sc.Preferred + sc.Historical + sc.Featured + sc.PriceRange + sc.Context
	return sc
}

// contextPoints awards one bonus per matching context rule: time-of-day
// category affinities plus ambient-condition affinities.
func contextPoints(cat types.Category, tctx types.TimeContext, perRule float64) float64 {
	var points float64
	switch tctx.Time {
	case types.TimeMorning:
		if cat == types.CategoryHotDrinks || cat == types.CategoryAppetizer {
			points += perRule
		}
	case types.TimeEvening, types.TimeNight:
		if cat == types.CategoryMainCourse || cat == types.CategoryPizza || cat == types.CategoryBurger {
			points += perRule
		}
	}
	switch tctx.Condition {
	case types.ConditionHot:
		if cat == types.CategoryColdDrinks || cat == types.CategorySmoothie {
			points += perRule
		}
	case types.ConditionCold:
		if cat == types.CategoryHotDrinks || cat == types.CategorySoup {
			points += perRule
		}
	}
	return points
}

// topImprovedNames ranks item names by how often they appear in
// improved-outcome reflections; ties keep first-seen order.
func topImprovedNames(recs []*types.FeedbackRecord, n int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, rec := range recs {
		var items []string
		if err := json.Unmarshal(rec.ItemsOrdered, &items); err != nil {
			continue
		}
		for _, name := range items {
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// emitShown records the exposure event without blocking or binding to the
// request lifetime: a caller abandoning the request must not lose the count.
func (s *recommendationService) emitShown(mood types.Mood, itemIDs []string) {
	if len(itemIDs) == 0 {
		return
	}
	if s.shownHook != nil {
		s.shownHook(mood, itemIDs)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.analytics.RecordShown(ctx, mood, itemIDs); err != nil {
			s.log.Warn("shown event not recorded", "mood", mood, "error", err)
		}
	}()
}

func categorySet(cats []types.Category) map[types.Category]struct{} {
	set := make(map[types.Category]struct{}, len(cats))
	for _, c := range cats {
		set[c] = struct{}{}
	}
	return set
}
