package repository

import (
	"context"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound    = RepositoryError("not found")
	ErrWriteFailed = RepositoryError("write failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Reads never fail: a missing or unparseable document yields the store's
// documented default. Writes return the underlying persistence error.

// ProfileRepository persists the single user profile record.
type ProfileRepository interface {
	Get(ctx context.Context) domain.Profile
	Save(ctx context.Context, p domain.Profile) error
}

// RoutineRepository persists the routine collection and the active id.
type RoutineRepository interface {
	All(ctx context.Context) []domain.Routine
	SaveAll(ctx context.Context, routines []domain.Routine) error
	ActiveID(ctx context.Context) string
	SetActiveID(ctx context.Context, id string) error
}

// LiftRepository persists the lift log, stored newest-first by date.
type LiftRepository interface {
	All(ctx context.Context) []domain.LiftEntry
	SaveAll(ctx context.Context, lifts []domain.LiftEntry) error
}

// BodyweightRepository persists bodyweight readings, stored ascending by date.
type BodyweightRepository interface {
	All(ctx context.Context) []domain.BodyweightEntry
	SaveAll(ctx context.Context, entries []domain.BodyweightEntry) error
}

// AttendanceRepository persists the set of checked-in ISO dates.
type AttendanceRepository interface {
	All(ctx context.Context) []string
	SaveAll(ctx context.Context, dates []string) error
}

// ProteinRepository persists the date -> meal-slot map.
type ProteinRepository interface {
	Map(ctx context.Context) map[string]domain.ProteinDay
	SaveMap(ctx context.Context, m map[string]domain.ProteinDay) error
}

// TargetRepository persists per-exercise target top weights, keyed by
// normalized exercise name.
type TargetRepository interface {
	Map(ctx context.Context) map[string]float64
	SaveMap(ctx context.Context, m map[string]float64) error
}

// CustomExerciseRepository persists user-added exercise names.
type CustomExerciseRepository interface {
	All(ctx context.Context) []string
	SaveAll(ctx context.Context, names []string) error
}

// StateRepository persists the small app-state flags that ride along in the
// export document: active screen, onboarding flag, backup timestamp, the
// last applied app version and the PIN hash for the optional lock.
type StateRepository interface {
	ActiveScreen(ctx context.Context) string
	SetActiveScreen(ctx context.Context, screen string) error
	OnboardingDone(ctx context.Context) bool
	SetOnboardingDone(ctx context.Context, done bool) error
	LastBackup(ctx context.Context) string
	SetLastBackup(ctx context.Context, at string) error
	AppVersion(ctx context.Context) string
	SetAppVersion(ctx context.Context, version string) error
	PinHash(ctx context.Context) string
	SetPinHash(ctx context.Context, hash string) error
}
