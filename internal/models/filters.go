package models

// FilterAll matches every year or category.
const FilterAll = "all"

// ViewFilter represents the two selector-driven view filters. The zero
// value of either field is normalized to "all" by the view service.
type ViewFilter struct {
	Year     string `json:"year" form:"year"`         // exact year string or "all"
	Category string `json:"category" form:"category"` // exact category or "all"
}

// TripSelection represents the single-trip selection toggle request.
type TripSelection struct {
	TripGroupKey string `json:"tripGroupKey" form:"tripGroupKey" binding:"required"`
}

// ColorModeRequest selects how map primitives are colored.
type ColorModeRequest struct {
	Mode string `json:"mode" form:"mode" binding:"required"` // "category" or "trip"
}

// CardExpandRequest records the expand/collapse state of one trip card.
type CardExpandRequest struct {
	Expanded bool `json:"expanded"`
}

// StatsFilter represents filter parameters for statistics queries
type StatsFilter struct {
	Year  string `form:"year"`  // all or YYYY
	Limit int    `form:"limit"` // max results for top lists
}
