package domain

// MenuItem is the catalog snapshot entry supplied by the caller on each
// recommendation request. The engine never stores or mutates the catalog.
type MenuItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Price     float64  `json:"price"`
	Available bool     `json:"available"`
	Featured  bool     `json:"featured"`
}

// ScoredItem is one ranked entry of a recommendation result, carrying the
// per-factor breakdown so the ranking stays explainable.
type ScoredItem struct {
	Item        MenuItem `json:"item"`
	Score       float64  `json:"score"`
	OrderRate   float64  `json:"order_rate_points"`
	MoodBenefit float64  `json:"mood_benefit_points"`
	Preferred   float64  `json:"preferred_category_points"`
	Historical  float64  `json:"historical_success_points"`
	Featured    float64  `json:"featured_points"`
	PriceRange  float64  `json:"price_range_points"`
	Context     float64  `json:"context_points"`
	BenefitText string   `json:"benefit_text,omitempty"`
}

// MaxRecommendations caps the ranked list returned to callers.
const MaxRecommendations = 8
