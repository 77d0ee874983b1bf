package service

import (
	"context"
	"errors"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/exercises"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrRoutineValidation = errors.New("routine validation failed")
	ErrLastRoutine       = errors.New("the last remaining routine cannot be deleted")
	ErrUnknownTemplate   = errors.New("unknown routine template")
	ErrUnknownDayKey     = errors.New("unknown weekday key")
)

// RoutineService owns the weekly routine collection. Every load runs the
// canonical-name migration and guarantees a non-empty collection with a
// resolvable active id.
type RoutineService interface {
	List(ctx context.Context) []domain.Routine
	Get(ctx context.Context, id string) (domain.Routine, error)
	Active(ctx context.Context) domain.Routine
	SetActive(ctx context.Context, id string) error
	Create(ctx context.Context, name, templateKey string) (domain.Routine, error)
	Duplicate(ctx context.Context, id string) (domain.Routine, error)
	Rename(ctx context.Context, id, name string) (domain.Routine, error)
	UpdateDay(ctx context.Context, id, dayKey string, day domain.DayPlan) (domain.Routine, error)
	Delete(ctx context.Context, id string) error
	Templates() []TemplateInfo
}

type routineService struct {
	routines repository.RoutineRepository
}

// NewRoutineService creates a new routine service.
func NewRoutineService(routines repository.RoutineRepository) RoutineService {
	return &routineService{routines: routines}
}

// load hydrates the collection, seeds a default split when empty and runs
// the canonical-name migration. Repair changes are persisted best-effort: a
// failed write here must not take down a read path.
func (s *routineService) load(ctx context.Context) []domain.Routine {
	routines := s.routines.All(ctx)
	changed := false

	if len(routines) == 0 {
		t, _ := templateByKey(DefaultTemplateKey)
		seeded := buildFromTemplate("", t, domain.RoutineSourceSeed)
		routines = []domain.Routine{seeded}
		changed = true
	}

	for i := range routines {
		if migrateExerciseNames(&routines[i]) {
			changed = true
		}
	}

	if changed {
		if err := s.routines.SaveAll(ctx, routines); err != nil {
			logrus.WithError(err).Warn("routines: repair write failed, continuing with in-memory copy")
		}
	}
	return routines
}

// migrateExerciseNames replaces every exercise name with its canonical form
// and removes duplicates (by normalized name) that result within the same
// day, keeping the first occurrence's position.
func migrateExerciseNames(routine *domain.Routine) bool {
	changed := false
	for _, key := range dates.DayKeys {
		day := routine.Days[key]
		seen := make(map[string]struct{}, len(day.Exercises))
		kept := day.Exercises[:0]
		for _, ex := range day.Exercises {
			clean := exercises.Clean(ex.Name)
			if clean != ex.Name {
				ex.Name = clean
				changed = true
			}
			norm := exercises.Normalize(clean)
			if norm == "" {
				changed = true
				continue
			}
			if _, dup := seen[norm]; dup {
				changed = true
				continue
			}
			seen[norm] = struct{}{}
			kept = append(kept, ex)
		}
		day.Exercises = kept
		routine.Days[key] = day
	}
	return changed
}

func (s *routineService) List(ctx context.Context) []domain.Routine {
	return s.load(ctx)
}

func (s *routineService) Get(ctx context.Context, id string) (domain.Routine, error) {
	for _, r := range s.load(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Routine{}, ErrRoutineNotFound
}

// Active returns the routine referenced by the active id, falling back to
// the first routine (and healing the stored id) when the reference is stale.
func (s *routineService) Active(ctx context.Context) domain.Routine {
	routines := s.load(ctx)
	id := s.routines.ActiveID(ctx)
	for _, r := range routines {
		if r.ID == id {
			return r
		}
	}
	first := routines[0]
	if err := s.routines.SetActiveID(ctx, first.ID); err != nil {
		logrus.WithError(err).Warn("routines: could not heal stale active id")
	}
	return first
}

func (s *routineService) SetActive(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.routines.SetActiveID(ctx, id)
}

func (s *routineService) Create(ctx context.Context, name, templateKey string) (domain.Routine, error) {
	if name == "" && templateKey == "" {
		return domain.Routine{}, ErrRoutineValidation
	}

	var routine domain.Routine
	if templateKey != "" {
		t, ok := templateByKey(templateKey)
		if !ok {
			return domain.Routine{}, ErrUnknownTemplate
		}
		routine = buildFromTemplate(name, t, domain.RoutineSourceTemplate)
	} else {
		routine = domain.Routine{
			ID:     uuid.NewString(),
			Name:   name,
			Source: domain.RoutineSourceCustom,
			Days:   emptyWeek(),
		}
	}

	routines := append(s.load(ctx), routine)
	if err := s.routines.SaveAll(ctx, routines); err != nil {
		return domain.Routine{}, err
	}
	return routine, nil
}

func (s *routineService) Duplicate(ctx context.Context, id string) (domain.Routine, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return domain.Routine{}, err
	}

	copyRoutine := domain.Routine{
		ID:     uuid.NewString(),
		Name:   src.Name + " (copy)",
		Source: domain.RoutineSourceDuplicate,
		Days:   make(map[string]domain.DayPlan, len(src.Days)),
	}
	for key, day := range src.Days {
		exCopy := make([]domain.ExercisePlan, len(day.Exercises))
		copy(exCopy, day.Exercises)
		day.Exercises = exCopy
		copyRoutine.Days[key] = day
	}

	routines := append(s.load(ctx), copyRoutine)
	if err := s.routines.SaveAll(ctx, routines); err != nil {
		return domain.Routine{}, err
	}
	return copyRoutine, nil
}

func (s *routineService) Rename(ctx context.Context, id, name string) (domain.Routine, error) {
	if name == "" {
		return domain.Routine{}, ErrRoutineValidation
	}
	routines := s.load(ctx)
	for i := range routines {
		if routines[i].ID == id {
			routines[i].Name = name
			if err := s.routines.SaveAll(ctx, routines); err != nil {
				return domain.Routine{}, err
			}
			return routines[i], nil
		}
	}
	return domain.Routine{}, ErrRoutineNotFound
}

func (s *routineService) UpdateDay(ctx context.Context, id, dayKey string, day domain.DayPlan) (domain.Routine, error) {
	if !validDayKey(dayKey) {
		return domain.Routine{}, ErrUnknownDayKey
	}

	// Clean incoming exercise names the same way the load migration does.
	kept := make([]domain.ExercisePlan, 0, len(day.Exercises))
	seen := make(map[string]struct{}, len(day.Exercises))
	for _, ex := range day.Exercises {
		ex.Name = exercises.Clean(ex.Name)
		norm := exercises.Normalize(ex.Name)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		if ex.Sets < 0 {
			ex.Sets = 0
		}
		seen[norm] = struct{}{}
		kept = append(kept, ex)
	}
	day.Exercises = kept

	routines := s.load(ctx)
	for i := range routines {
		if routines[i].ID == id {
			routines[i].Days[dayKey] = day
			if err := s.routines.SaveAll(ctx, routines); err != nil {
				return domain.Routine{}, err
			}
			return routines[i], nil
		}
	}
	return domain.Routine{}, ErrRoutineNotFound
}

// Delete removes a routine, refusing when it is the only one left. When the
// deleted routine was active, the first remaining routine becomes active.
func (s *routineService) Delete(ctx context.Context, id string) error {
	routines := s.load(ctx)
	if len(routines) == 1 {
		if routines[0].ID == id {
			return ErrLastRoutine
		}
		return ErrRoutineNotFound
	}

	kept := make([]domain.Routine, 0, len(routines)-1)
	found := false
	for _, r := range routines {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrRoutineNotFound
	}

	if err := s.routines.SaveAll(ctx, kept); err != nil {
		return err
	}
	if s.routines.ActiveID(ctx) == id {
		return s.routines.SetActiveID(ctx, kept[0].ID)
	}
	return nil
}

func (s *routineService) Templates() []TemplateInfo {
	infos := make([]TemplateInfo, len(routineTemplates))
	for i, t := range routineTemplates {
		infos[i] = t.info
	}
	return infos
}

func emptyWeek() map[string]domain.DayPlan {
	days := make(map[string]domain.DayPlan, len(dates.DayKeys))
	for _, key := range dates.DayKeys {
		days[key] = domain.DayPlan{Exercises: []domain.ExercisePlan{}}
	}
	return days
}

func validDayKey(key string) bool {
	for _, k := range dates.DayKeys {
		if k == key {
			return true
		}
	}
	return false
}
