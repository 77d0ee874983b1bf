package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/exercises"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrLiftValidation = errors.New("a lift needs at least one set with weight and reps above zero")
	ErrLiftNotFound   = errors.New("lift entry not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrTargetInvalid  = errors.New("target weight must be above zero")
)

// Trend metrics for graph views.
const (
	MetricTopWeight = "top"
	MetricOneRepMax = "e1rm"
	MetricVolume    = "volume"
)

// DefaultStallLookback is the session window of the stalled check.
const DefaultStallLookback = 3

// RecordLiftInput is the payload for logging a workout.
type RecordLiftInput struct {
	ExerciseName string
	Date         string // empty means today
	Sets         []domain.SetDetail
	RoutineID    string
	RoutineName  string
	DayKey       string
}

// LiftFilter narrows List results. Zero values mean "no constraint"; Limit
// zero means full range (graph mode).
type LiftFilter struct {
	Exercise  string
	RoutineID string
	From      string // inclusive
	To        string // inclusive
	Limit     int
}

// LiftView is a lift entry plus the lazily recomputed record flag. The
// stored IsPersonalRecord keeps its insertion-time value; CurrentPR reflects
// the log as it stands now, so deleting a record-setting entry is visible
// here without rewriting history.
type LiftView struct {
	domain.LiftEntry
	CurrentPR bool `json:"currentPr"`
}

// ExerciseStats are the per-exercise aggregates. Nil pointers mean the
// bucket is empty.
type ExerciseStats struct {
	Exercise       string   `json:"exercise"`
	Sessions       int      `json:"sessions"`
	LifetimeMax    *float64 `json:"lifetimeMax"`
	ThisWeekMax    *float64 `json:"thisWeekMax"`
	LastWeekMax    *float64 `json:"lastWeekMax"`
	Stalled        bool     `json:"stalled"`
	TargetWeight   *float64 `json:"targetWeight,omitempty"`
	TargetProgress *float64 `json:"targetProgress,omitempty"`
}

// ChartFeed is the {labels, series} pair handed to the charting component.
type ChartFeed struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

// LiftService owns the lift log, per-exercise targets and the trend math.
type LiftService interface {
	Record(ctx context.Context, in RecordLiftInput) (domain.LiftEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter LiftFilter) []LiftView
	Stats(ctx context.Context, exercise string, now time.Time) ExerciseStats
	IsStalled(ctx context.Context, exercise string, lookback int) bool
	Trend(ctx context.Context, exercise, metric string, limit int) (ChartFeed, error)
	Targets(ctx context.Context) map[string]float64
	SetTarget(ctx context.Context, exercise string, weight float64) error
	ClearTarget(ctx context.Context, exercise string) error
}

type liftService struct {
	lifts   repository.LiftRepository
	targets repository.TargetRepository
}

// NewLiftService creates a new lift service.
func NewLiftService(lifts repository.LiftRepository, targets repository.TargetRepository) LiftService {
	return &liftService{lifts: lifts, targets: targets}
}

// Record validates and persists a workout entry. Sets without positive
// weight and reps are dropped before validation; the top set is the heaviest
// remaining set, first occurrence winning ties. The PR flag compares the new
// top weight against every prior entry for the same normalized name and is
// never recomputed afterwards.
func (s *liftService) Record(ctx context.Context, in RecordLiftInput) (domain.LiftEntry, error) {
	name := exercises.Clean(in.ExerciseName)
	if name == "" {
		return domain.LiftEntry{}, ErrLiftValidation
	}

	date := in.Date
	if date == "" {
		date = dates.TodayISO()
	}
	if !dates.IsValidISO(date) {
		return domain.LiftEntry{}, ErrInvalidDate
	}

	valid := make([]domain.SetDetail, 0, len(in.Sets))
	for _, set := range in.Sets {
		if set.Valid() {
			valid = append(valid, set)
		}
	}
	if len(valid) == 0 {
		return domain.LiftEntry{}, ErrLiftValidation
	}

	top := valid[0]
	for _, set := range valid[1:] {
		if set.Weight > top.Weight {
			top = set
		}
	}

	norm := exercises.Normalize(name)
	all := s.lifts.All(ctx)

	isPR := true
	for _, prior := range all {
		if prior.ExerciseNameNormalized == norm && prior.TopWeight >= top.Weight {
			isPR = false
			break
		}
	}

	entry := domain.LiftEntry{
		ID:                     uuid.NewString(),
		Date:                   date,
		ExerciseName:           name,
		ExerciseNameNormalized: norm,
		SetCount:               len(valid),
		TopReps:                top.Reps,
		TopWeight:              top.Weight,
		IsPersonalRecord:       isPR,
		SetDetails:             valid,
		RoutineID:              in.RoutineID,
		RoutineName:            in.RoutineName,
		DayKey:                 in.DayKey,
	}

	all = append(all, entry)
	// Lexicographic comparison of YYYY-MM-DD strings is chronological.
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })

	if err := s.lifts.SaveAll(ctx, all); err != nil {
		return domain.LiftEntry{}, err
	}
	return entry, nil
}

// Delete removes an entry by id. Other entries' stored PR flags are left
// untouched; the CurrentPR view absorbs the staleness.
func (s *liftService) Delete(ctx context.Context, id string) error {
	all := s.lifts.All(ctx)
	kept := make([]domain.LiftEntry, 0, len(all))
	found := false
	for _, e := range all {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrLiftNotFound
	}
	return s.lifts.SaveAll(ctx, kept)
}

func (s *liftService) List(ctx context.Context, filter LiftFilter) []LiftView {
	all := s.lifts.All(ctx)
	currentPR := recomputePRs(all)

	norm := exercises.Normalize(exercises.Canonical(filter.Exercise))
	out := make([]LiftView, 0, len(all))
	for _, e := range all {
		if norm != "" && e.ExerciseNameNormalized != norm {
			continue
		}
		if filter.RoutineID != "" && e.RoutineID != filter.RoutineID {
			continue
		}
		if filter.From != "" && e.Date < filter.From {
			continue
		}
		if filter.To != "" && e.Date > filter.To {
			continue
		}
		out = append(out, LiftView{LiftEntry: e, CurrentPR: currentPR[e.ID]})
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}

// recomputePRs walks the log oldest-first and flags every entry whose top
// weight strictly exceeded everything before it for that exercise.
func recomputePRs(all []domain.LiftEntry) map[string]bool {
	flags := make(map[string]bool, len(all))
	maxSoFar := make(map[string]float64)
	for i := len(all) - 1; i >= 0; i-- { // stored newest-first
		e := all[i]
		best, seen := maxSoFar[e.ExerciseNameNormalized]
		if !seen || e.TopWeight > best {
			flags[e.ID] = true
			maxSoFar[e.ExerciseNameNormalized] = e.TopWeight
		}
	}
	return flags
}

func (s *liftService) Stats(ctx context.Context, exercise string, now time.Time) ExerciseStats {
	name := exercises.Clean(exercise)
	norm := exercises.Normalize(name)
	stats := ExerciseStats{Exercise: name}

	today := dates.ToISO(now)
	weekAgo := dates.AddDays(today, -7)
	twoWeeksAgo := dates.AddDays(today, -14)

	for _, e := range s.lifts.All(ctx) {
		if e.ExerciseNameNormalized != norm {
			continue
		}
		stats.Sessions++
		stats.LifetimeMax = maxPtr(stats.LifetimeMax, e.TopWeight)
		if e.Date >= weekAgo {
			stats.ThisWeekMax = maxPtr(stats.ThisWeekMax, e.TopWeight)
		} else if e.Date >= twoWeeksAgo {
			stats.LastWeekMax = maxPtr(stats.LastWeekMax, e.TopWeight)
		}
	}

	stats.Stalled = s.IsStalled(ctx, name, DefaultStallLookback)

	if target, ok := s.targets.Map(ctx)[norm]; ok && target > 0 {
		stats.TargetWeight = &target
		if stats.LifetimeMax != nil {
			progress := *stats.LifetimeMax / target
			stats.TargetProgress = &progress
		}
	}
	return stats
}

// IsStalled samples the most recent lookback sessions for the exercise and
// reports whether the newest one failed to strictly beat the rest of the
// window. Ties count as stalled. Fewer than lookback sessions is never
// stalled.
func (s *liftService) IsStalled(ctx context.Context, exercise string, lookback int) bool {
	if lookback < 2 {
		lookback = DefaultStallLookback
	}
	norm := exercises.Normalize(exercises.Canonical(exercise))

	var window []domain.LiftEntry
	for _, e := range s.lifts.All(ctx) { // newest-first
		if e.ExerciseNameNormalized != norm {
			continue
		}
		window = append(window, e)
		if len(window) == lookback {
			break
		}
	}
	if len(window) < lookback {
		return false
	}

	priorMax := window[1].TopWeight
	for _, e := range window[2:] {
		if e.TopWeight > priorMax {
			priorMax = e.TopWeight
		}
	}
	return window[0].TopWeight <= priorMax
}

// Trend builds a chart feed for one exercise, oldest to newest. Limit keeps
// only the most recent N sessions; zero means full range.
func (s *liftService) Trend(ctx context.Context, exercise, metric string, limit int) (ChartFeed, error) {
	if metric == "" {
		metric = MetricTopWeight
	}
	if metric != MetricTopWeight && metric != MetricOneRepMax && metric != MetricVolume {
		return ChartFeed{}, errors.New("unknown trend metric: " + metric)
	}

	norm := exercises.Normalize(exercises.Canonical(exercise))
	var entries []domain.LiftEntry
	for _, e := range s.lifts.All(ctx) {
		if e.ExerciseNameNormalized == norm {
			entries = append(entries, e)
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit] // newest-first, keep most recent
	}

	feed := ChartFeed{
		Labels: make([]string, 0, len(entries)),
		Series: make([]float64, 0, len(entries)),
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		feed.Labels = append(feed.Labels, e.Date)
		switch metric {
		case MetricOneRepMax:
			feed.Series = append(feed.Series, EstimateOneRepMax(e.TopWeight, e.TopReps))
		case MetricVolume:
			feed.Series = append(feed.Series, e.Volume())
		default:
			feed.Series = append(feed.Series, e.TopWeight)
		}
	}
	return feed, nil
}

// EstimateOneRepMax applies the Epley formula: w * (1 + reps/30).
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

func (s *liftService) Targets(ctx context.Context) map[string]float64 {
	return s.targets.Map(ctx)
}

func (s *liftService) SetTarget(ctx context.Context, exercise string, weight float64) error {
	norm := exercises.Normalize(exercises.Clean(exercise))
	if norm == "" || weight <= 0 {
		return ErrTargetInvalid
	}
	m := s.targets.Map(ctx)
	m[norm] = weight
	return s.targets.SaveMap(ctx, m)
}

func (s *liftService) ClearTarget(ctx context.Context, exercise string) error {
	norm := exercises.Normalize(exercises.Clean(exercise))
	m := s.targets.Map(ctx)
	if _, ok := m[norm]; !ok {
		return nil
	}
	delete(m, norm)
	return s.targets.SaveMap(ctx, m)
}

func maxPtr(current *float64, candidate float64) *float64 {
	if current == nil || candidate > *current {
		return &candidate
	}
	return current
}
