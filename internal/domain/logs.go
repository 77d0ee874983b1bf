package domain

// BodyweightEntry is a single reading, unique per date. Adding an entry for a
// date that already has one replaces it.
type BodyweightEntry struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// ProteinDay holds the five meal-slot gram counts for one date.
type ProteinDay struct {
	Morning float64 `json:"morning"`
	Lunch   float64 `json:"lunch"`
	Pre     float64 `json:"pre"`
	Dinner  float64 `json:"dinner"`
	Bed     float64 `json:"bed"`
}

// Total sums the five slots. Missing slots decode as zero, so a missing date
// naturally totals 0.
func (p ProteinDay) Total() float64 {
	return p.Morning + p.Lunch + p.Pre + p.Dinner + p.Bed
}

// Protein status tiers relative to the daily goal.
const (
	ProteinStatusHit    = "hit"
	ProteinStatusAlmost = "almost"
	ProteinStatusUnder  = "under"
)

// ProteinStatus classifies a daily total: hit at >= goal, almost at >= 75%
// of goal, under otherwise.
func ProteinStatus(total float64, goal int) string {
	if goal <= 0 {
		return ProteinStatusUnder
	}
	g := float64(goal)
	switch {
	case total >= g:
		return ProteinStatusHit
	case total >= 0.75*g:
		return ProteinStatusAlmost
	default:
		return ProteinStatusUnder
	}
}
