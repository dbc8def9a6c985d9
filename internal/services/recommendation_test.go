package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	feedbackrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/feedback"
	moodrepos "github.com/feelbite/moodmenu-backend/internal/data/repos/mood"
	"github.com/feelbite/moodmenu-backend/internal/data/repos/testutil"
	types "github.com/feelbite/moodmenu-backend/internal/domain"
)

// neutralTime resolves to afternoon/normal, so no context rule fires unless a
// test opts in with its own clock.
var neutralTime = time.Date(2026, time.March, 15, 14, 0, 0, 0, time.UTC)

type shownCapture struct {
	mood  types.Mood
	items []string
	calls int
}

func newRecoForTest(t *testing.T, tx *gorm.DB, cfg ConfigService, at time.Time) (*recommendationService, *shownCapture) {
	t.Helper()
	log := testutil.Logger(t)
	if cfg == nil {
		cfg = NewConfigService(tx, log, feedbackrepos.NewConfigRepo(tx, log))
	}
	stats := moodrepos.NewStatisticRepo(tx, log)
	itemStats := moodrepos.NewItemStatisticRepo(tx, log)
	analytics := NewAnalyticsService(tx, log, stats, itemStats, cfg)
	svc := NewRecommendationService(
		tx,
		log,
		moodrepos.NewDefinitionRepo(tx, log),
		itemStats,
		moodrepos.NewBenefitRepo(tx, log),
		feedbackrepos.NewRecordRepo(tx, log),
		cfg,
		NewTimeContextService(),
		analytics,
	).(*recommendationService)

	cap := &shownCapture{}
	svc.now = func() time.Time { return at }
	svc.shownHook = func(mood types.Mood, itemIDs []string) {
		cap.mood = mood
		cap.items = itemIDs
		cap.calls++
	}
	return svc, cap
}

func item(id string, cat types.Category, price float64) types.MenuItem {
	return types.MenuItem{ID: id, Name: id, Category: cat, Price: price, Available: true}
}

func TestRecommendationsPreferredCategoryRanking(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodSad,
		[]types.Category{types.CategoryPizza}, nil)

	svc, cap := newRecoForTest(t, tx, nil, neutralTime)
	got, err := svc.GetRecommendations(ctx, types.MoodSad, []types.MenuItem{
		item("item-2", types.CategoryColdDrinks, 4),
		item("item-1", types.CategoryPizza, 12),
	})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Item.ID != "item-1" || got[1].Item.ID != "item-2" {
		t.Fatalf("ranking = [%s %s], want [item-1 item-2]", got[0].Item.ID, got[1].Item.ID)
	}
	if got[0].Score != 10 || got[0].Preferred != 10 {
		t.Fatalf("preferred item score = %v (preferred %v), want 10", got[0].Score, got[0].Preferred)
	}
	if got[1].Score != 0 {
		t.Fatalf("non-preferred item score = %v, want 0", got[1].Score)
	}
	if cap.calls != 1 || cap.mood != types.MoodSad {
		t.Fatalf("shown event: calls=%d mood=%s", cap.calls, cap.mood)
	}
	if len(cap.items) != 2 || cap.items[0] != "item-1" {
		t.Fatalf("shown items = %v", cap.items)
	}
}

func TestRecommendationsFiltersExcludedAndUnavailable(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodStressed,
		nil, []types.Category{types.CategoryColdDrinks})

	svc, _ := newRecoForTest(t, tx, nil, neutralTime)
	offline := item("sold-out", types.CategorySalad, 7)
	offline.Available = false
	got, err := svc.GetRecommendations(ctx, types.MoodStressed, []types.MenuItem{
		item("iced-latte", types.CategoryColdDrinks, 4),
		offline,
		item("lentil-soup", types.CategorySoup, 6),
	})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(got) != 1 || got[0].Item.ID != "lentil-soup" {
		t.Fatalf("got %+v, want only lentil-soup", got)
	}
}

func TestRecommendationsTruncatesToCap(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodHappy,
		[]types.Category{types.CategoryPizza}, nil)

	catalog := make([]types.MenuItem, 0, 12)
	for i := 0; i < 11; i++ {
		catalog = append(catalog, item(fmt.Sprintf("filler-%d", i), types.CategorySalad, 6))
	}
	catalog = append(catalog, item("winner", types.CategoryPizza, 11))

	svc, cap := newRecoForTest(t, tx, nil, neutralTime)
	got, err := svc.GetRecommendations(ctx, types.MoodHappy, catalog)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(got) != types.MaxRecommendations {
		t.Fatalf("len = %d, want %d", len(got), types.MaxRecommendations)
	}
	if got[0].Item.ID != "winner" {
		t.Fatalf("top item = %s, want winner", got[0].Item.ID)
	}
	if len(cap.items) != types.MaxRecommendations {
		t.Fatalf("shown events = %d ids, want %d", len(cap.items), types.MaxRecommendations)
	}
}

func TestRecommendationsZeroWeightsKeepCatalogOrder(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedDefinition(t, ctx, tx, types.MoodTired,
		[]types.Category{types.CategoryPizza}, nil)
	cfg := *types.DefaultFeedbackConfig()
	cfg.MoodBenefitWeight = 0
	cfg.PreferredCategoryWeight = 0
	cfg.HistoricalDataWeight = 0
	cfg.FeaturedItemWeight = 0
	cfg.PriceRangeWeight = 0
	cfg.TimeOfDayWeight = 0

	featured := item("b", types.CategorySalad, 6)
	featured.Featured = true
	catalog := []types.MenuItem{
		item("a", types.CategoryPizza, 12),
		featured,
		item("c", types.CategorySoup, 5),
	}

	svc, _ := newRecoForTest(t, tx, staticConfig(cfg), neutralTime)
	got, err := svc.GetRecommendations(ctx, types.MoodTired, catalog)
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Item.ID != want {
			t.Fatalf("position %d = %s, want %s (ties must keep catalog order)", i, got[i].Item.ID, want)
		}
		if got[i].Score != 0 {
			t.Fatalf("item %s score = %v, want 0", got[i].Item.ID, got[i].Score)
		}
	}
}

func TestRecommendationsUnknownOrInactiveMood(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	def := testutil.SeedDefinition(t, ctx, tx, types.MoodRelaxed, nil, nil)
	if err := tx.Model(def).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	svc, cap := newRecoForTest(t, tx, nil, neutralTime)
	catalog := []types.MenuItem{item("x", types.CategoryPizza, 10)}

	got, err := svc.GetRecommendations(ctx, types.MoodExcited, catalog)
	if err != nil || len(got) != 0 {
		t.Fatalf("unknown mood: got %v, %v; want empty, nil", got, err)
	}
	got, err = svc.GetRecommendations(ctx, types.MoodRelaxed, catalog)
	if err != nil || len(got) != 0 {
		t.Fatalf("inactive mood: got %v, %v; want empty, nil", got, err)
	}
	if cap.calls != 0 {
		t.Fatalf("shown event emitted for empty result")
	}
}

func TestRecommendationsOrderRateAndBenefits(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodStressed, nil, nil)

	if err := tx.Create(&types.ItemMoodStatistic{
		Mood: types.MoodStressed, ItemID: "chamomile", Shown: 10, Ordered: 5,
	}).Error; err != nil {
		t.Fatalf("seed item stat: %v", err)
	}
	chamomileID := "chamomile"
	testutil.SeedBenefit(t, ctx, tx, types.MoodStressed, &chamomileID, nil, "Chamomile is known to calm the nerves")
	soupCat := types.CategorySoup
	testutil.SeedBenefit(t, ctx, tx, types.MoodStressed, nil, &soupCat, "Warm soups are comforting")

	svc, _ := newRecoForTest(t, tx, nil, neutralTime)
	got, err := svc.GetRecommendations(ctx, types.MoodStressed, []types.MenuItem{
		item("chamomile", types.CategoryHotDrinks, 3),
		item("tomato-soup", types.CategorySoup, 6),
		item("plain-salad", types.CategorySalad, 7),
	})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}

	byID := map[string]types.ScoredItem{}
	for _, sc := range got {
		byID[sc.Item.ID] = sc
	}
	cham := byID["chamomile"]
	if cham.OrderRate != 5 {
		t.Fatalf("chamomile OrderRate = %v, want 5 (50%% of 10 points)", cham.OrderRate)
	}
	if cham.MoodBenefit != 20 || cham.BenefitText == "" {
		t.Fatalf("chamomile benefit = %v %q", cham.MoodBenefit, cham.BenefitText)
	}
	if cham.Score != 25 {
		t.Fatalf("chamomile score = %v, want 25", cham.Score)
	}
	soup := byID["tomato-soup"]
	if soup.MoodBenefit != 20 || soup.BenefitText != "Warm soups are comforting" {
		t.Fatalf("soup benefit = %v %q", soup.MoodBenefit, soup.BenefitText)
	}
	if sc := byID["plain-salad"]; sc.Score != 0 {
		t.Fatalf("salad score = %v, want 0", sc.Score)
	}
}

func TestRecommendationsHistoricalSuccessBonus(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodSad, nil, nil)

	for i := 0; i < 3; i++ {
		testutil.SeedRecord(t, ctx, tx, types.MoodSad, types.OutcomeImproved, "Berry Smoothie")
	}
	testutil.SeedRecord(t, ctx, tx, types.MoodSad, types.OutcomeWorse, "Plain Toast")

	svc, _ := newRecoForTest(t, tx, nil, neutralTime)
	smoothie := types.MenuItem{ID: "sm-1", Name: "Berry Smoothie", Category: types.CategorySmoothie, Price: 5, Available: true}
	toast := types.MenuItem{ID: "to-1", Name: "Plain Toast", Category: types.CategoryAppetizer, Price: 2, Available: true}
	got, err := svc.GetRecommendations(ctx, types.MoodSad, []types.MenuItem{toast, smoothie})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	if got[0].Item.Name != "Berry Smoothie" {
		t.Fatalf("top item = %s, want Berry Smoothie", got[0].Item.Name)
	}
	if got[0].Historical != 15 {
		t.Fatalf("Historical = %v, want 15", got[0].Historical)
	}
	if got[1].Historical != 0 {
		t.Fatalf("worse-outcome item got history bonus: %+v", got[1])
	}
}

func TestRecommendationsContextBonuses(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	testutil.SeedDefinition(t, ctx, tx, types.MoodHappy, nil, nil)

	// Summer morning: morning favours hot drinks, hot weather favours
	// smoothies, so each earns one rule's worth of points.
	at := time.Date(2026, time.July, 10, 8, 30, 0, 0, time.UTC)
	svc, _ := newRecoForTest(t, tx, nil, at)
	got, err := svc.GetRecommendations(ctx, types.MoodHappy, []types.MenuItem{
		item("espresso", types.CategoryHotDrinks, 3),
		item("mango-smoothie", types.CategorySmoothie, 5),
		item("margherita", types.CategoryPizza, 11),
	})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	byID := map[string]types.ScoredItem{}
	for _, sc := range got {
		byID[sc.Item.ID] = sc
	}
	if byID["espresso"].Context != 5 {
		t.Fatalf("espresso context = %v, want 5", byID["espresso"].Context)
	}
	if byID["mango-smoothie"].Context != 5 {
		t.Fatalf("smoothie context = %v, want 5", byID["mango-smoothie"].Context)
	}
	if byID["margherita"].Context != 0 {
		t.Fatalf("pizza context = %v, want 0", byID["margherita"].Context)
	}
}

func TestRecommendationsPriceRangeAndFeatured(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	testutil.SeedConfig(t, ctx, tx)
	def := testutil.SeedDefinition(t, ctx, tx, types.MoodTired, nil, nil)
	min, max := 4.0, 9.0
	if err := tx.Model(def).Updates(map[string]interface{}{"price_min": min, "price_max": max}).Error; err != nil {
		t.Fatalf("set price range: %v", err)
	}

	featured := item("promo-bowl", types.CategorySalad, 6)
	featured.Featured = true
	svc, _ := newRecoForTest(t, tx, nil, neutralTime)
	got, err := svc.GetRecommendations(ctx, types.MoodTired, []types.MenuItem{
		featured,
		item("splurge-steak", types.CategoryMainCourse, 24),
	})
	if err != nil {
		t.Fatalf("GetRecommendations: %v", err)
	}
	byID := map[string]types.ScoredItem{}
	for _, sc := range got {
		byID[sc.Item.ID] = sc
	}
	bowl := byID["promo-bowl"]
	if bowl.Featured != 5 || bowl.PriceRange != 5 || bowl.Score != 10 {
		t.Fatalf("promo-bowl = %+v, want featured 5 + price 5", bowl)
	}
	steak := byID["splurge-steak"]
	if steak.PriceRange != 0 {
		t.Fatalf("out-of-range item got price points: %+v", steak)
	}
}
