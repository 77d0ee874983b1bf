package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

// --- Error Definitions ---
var (
	ErrBodyweightValidation = errors.New("bodyweight entry needs a valid date and a weight above zero")
	ErrProteinValidation    = errors.New("protein slot values must be non-negative")
	ErrEntryNotFound        = errors.New("log entry not found")
)

// BodyweightStats summarizes the bodyweight log.
type BodyweightStats struct {
	Latest      *domain.BodyweightEntry `json:"latest"`
	Delta       *float64                `json:"delta"`       // vs previous entry
	TrailingAvg *float64                `json:"trailingAvg"` // 7-day window
}

// WeekAttendance compares attended days against the active routine's weekly
// target inside the current week window.
type WeekAttendance struct {
	WeekStart string `json:"weekStart"`
	Attended  int    `json:"attended"`
	Target    int    `json:"target"`
	Remaining int    `json:"remaining"`
}

// ProteinSummary is one date's protein picture against the profile goal.
type ProteinSummary struct {
	Date      string            `json:"date"`
	Slots     domain.ProteinDay `json:"slots"`
	Total     float64           `json:"total"`
	Goal      int               `json:"goal"`
	Remaining float64           `json:"remaining"`
	Status    string            `json:"status"`
}

// LogService owns the bodyweight, attendance and protein logs.
type LogService interface {
	AddBodyweight(ctx context.Context, date string, weight float64) (domain.BodyweightEntry, error)
	DeleteBodyweight(ctx context.Context, date string) error
	Bodyweights(ctx context.Context) []domain.BodyweightEntry
	BodyweightStats(ctx context.Context, now time.Time) BodyweightStats
	BodyweightSeries(ctx context.Context) ChartFeed

	ToggleAttendance(ctx context.Context, date string) (attended bool, err error)
	Attendance(ctx context.Context) []string
	Attended(ctx context.Context, date string) bool
	WeekAttendance(ctx context.Context, now time.Time) WeekAttendance

	SetProtein(ctx context.Context, date string, slots domain.ProteinDay) error
	ProteinFor(ctx context.Context, date string) domain.ProteinDay
	ProteinSummary(ctx context.Context, date string) ProteinSummary
}

type logService struct {
	bodyweight repository.BodyweightRepository
	attendance repository.AttendanceRepository
	protein    repository.ProteinRepository
	profiles   repository.ProfileRepository
	routines   RoutineService
}

// NewLogService creates a new log service.
func NewLogService(
	bodyweight repository.BodyweightRepository,
	attendance repository.AttendanceRepository,
	protein repository.ProteinRepository,
	profiles repository.ProfileRepository,
	routines RoutineService,
) LogService {
	return &logService{
		bodyweight: bodyweight,
		attendance: attendance,
		protein:    protein,
		profiles:   profiles,
		routines:   routines,
	}
}

// AddBodyweight records a reading, replacing any existing entry for the
// date. The collection stays sorted ascending by date.
func (s *logService) AddBodyweight(ctx context.Context, date string, weight float64) (domain.BodyweightEntry, error) {
	if !dates.IsValidISO(date) || weight <= 0 {
		return domain.BodyweightEntry{}, ErrBodyweightValidation
	}

	entries := s.bodyweight.All(ctx)
	entry := domain.BodyweightEntry{Date: date, Weight: weight}

	replaced := false
	for i := range entries {
		if entries[i].Date == date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	if err := s.bodyweight.SaveAll(ctx, entries); err != nil {
		return domain.BodyweightEntry{}, err
	}
	return entry, nil
}

func (s *logService) DeleteBodyweight(ctx context.Context, date string) error {
	entries := s.bodyweight.All(ctx)
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEntryNotFound
	}
	return s.bodyweight.SaveAll(ctx, kept)
}

func (s *logService) Bodyweights(ctx context.Context) []domain.BodyweightEntry {
	return s.bodyweight.All(ctx)
}

func (s *logService) BodyweightStats(ctx context.Context, now time.Time) BodyweightStats {
	entries := s.bodyweight.All(ctx) // ascending by date
	stats := BodyweightStats{}
	if len(entries) == 0 {
		return stats
	}

	latest := entries[len(entries)-1]
	stats.Latest = &latest
	if len(entries) > 1 {
		delta := latest.Weight - entries[len(entries)-2].Weight
		stats.Delta = &delta
	}

	cutoff := dates.AddDays(dates.ToISO(now), -6)
	var sum float64
	var count int
	for _, e := range entries {
		if e.Date >= cutoff {
			sum += e.Weight
			count++
		}
	}
	if count > 0 {
		avg := sum / float64(count)
		stats.TrailingAvg = &avg
	}
	return stats
}

func (s *logService) BodyweightSeries(ctx context.Context) ChartFeed {
	entries := s.bodyweight.All(ctx)
	feed := ChartFeed{
		Labels: make([]string, 0, len(entries)),
		Series: make([]float64, 0, len(entries)),
	}
	for _, e := range entries {
		feed.Labels = append(feed.Labels, e.Date)
		feed.Series = append(feed.Series, e.Weight)
	}
	return feed
}

// ToggleAttendance flips membership of a date in the attendance set and
// reports the resulting state.
func (s *logService) ToggleAttendance(ctx context.Context, date string) (bool, error) {
	if !dates.IsValidISO(date) {
		return false, ErrInvalidDate
	}

	attended := s.attendance.All(ctx)
	kept := make([]string, 0, len(attended)+1)
	removed := false
	for _, d := range attended {
		if d == date {
			removed = true
			continue
		}
		kept = append(kept, d)
	}
	if !removed {
		kept = append(kept, date)
		sort.Strings(kept)
	}
	if err := s.attendance.SaveAll(ctx, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *logService) Attendance(ctx context.Context) []string {
	return s.attendance.All(ctx)
}

func (s *logService) Attended(ctx context.Context, date string) bool {
	for _, d := range s.attendance.All(ctx) {
		if d == date {
			return true
		}
	}
	return false
}

// WeekAttendance counts attended dates inside [weekStart, weekStart+7)
// against the active routine's weekly target.
func (s *logService) WeekAttendance(ctx context.Context, now time.Time) WeekAttendance {
	profile := s.profiles.Get(ctx)
	weekStart := dates.ToISO(dates.WeekStart(now, profile.WeekStart))
	weekEnd := dates.AddDays(weekStart, 7) // exclusive

	attended := 0
	for _, d := range s.attendance.All(ctx) {
		if d >= weekStart && d < weekEnd {
			attended++
		}
	}

	target := s.routines.Active(ctx).WeeklyTarget()
	remaining := target - attended
	if remaining < 0 {
		remaining = 0
	}
	return WeekAttendance{
		WeekStart: weekStart,
		Attended:  attended,
		Target:    target,
		Remaining: remaining,
	}
}

// SetProtein replaces all five slot values for a date.
func (s *logService) SetProtein(ctx context.Context, date string, slots domain.ProteinDay) error {
	if !dates.IsValidISO(date) {
		return ErrInvalidDate
	}
	if slots.Morning < 0 || slots.Lunch < 0 || slots.Pre < 0 || slots.Dinner < 0 || slots.Bed < 0 {
		return ErrProteinValidation
	}
	m := s.protein.Map(ctx)
	m[date] = slots
	return s.protein.SaveMap(ctx, m)
}

// ProteinFor returns the slots for a date; a missing date is all zeros.
func (s *logService) ProteinFor(ctx context.Context, date string) domain.ProteinDay {
	return s.protein.Map(ctx)[date]
}

func (s *logService) ProteinSummary(ctx context.Context, date string) ProteinSummary {
	profile := s.profiles.Get(ctx)
	slots := s.ProteinFor(ctx, date)
	total := slots.Total()
	remaining := float64(profile.ProteinGoal) - total
	if remaining < 0 {
		remaining = 0
	}
	return ProteinSummary{
		Date:      date,
		Slots:     slots,
		Total:     total,
		Goal:      profile.ProteinGoal,
		Remaining: remaining,
		Status:    domain.ProteinStatus(total, profile.ProteinGoal),
	}
}
