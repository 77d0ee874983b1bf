package service

import (
	"context"
	"errors"
	"sort"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/exercises"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNameEmpty = errors.New("exercise name cannot be empty")
)

// LibraryService owns the exercise name library: the built-in catalog merged
// with the user's custom additions.
type LibraryService interface {
	// Names returns the merged, deduplicated library sorted by name.
	Names(ctx context.Context) []string
	// Custom returns only the user-added names.
	Custom(ctx context.Context) []string
	AddCustom(ctx context.Context, name string) (string, error)
	RemoveCustom(ctx context.Context, name string) error
}

type libraryService struct {
	custom repository.CustomExerciseRepository
}

// NewLibraryService creates a new exercise library service.
func NewLibraryService(custom repository.CustomExerciseRepository) LibraryService {
	return &libraryService{custom: custom}
}

func (s *libraryService) Names(ctx context.Context) []string {
	return exercises.Merged(s.custom.All(ctx))
}

func (s *libraryService) Custom(ctx context.Context) []string {
	return s.custom.All(ctx)
}

// AddCustom stores a cleaned custom name. Names already covered by the
// built-in catalog or an earlier addition are a no-op, returning the
// canonical form either way.
func (s *libraryService) AddCustom(ctx context.Context, name string) (string, error) {
	clean := exercises.Clean(name)
	if clean == "" {
		return "", ErrExerciseNameEmpty
	}
	norm := exercises.Normalize(clean)

	for _, builtin := range exercises.Catalog {
		if exercises.Normalize(builtin) == norm {
			return builtin, nil
		}
	}

	custom := s.custom.All(ctx)
	for _, existing := range custom {
		if exercises.Normalize(existing) == norm {
			return existing, nil
		}
	}

	custom = append(custom, clean)
	sort.Strings(custom)
	if err := s.custom.SaveAll(ctx, custom); err != nil {
		return "", err
	}
	return clean, nil
}

func (s *libraryService) RemoveCustom(ctx context.Context, name string) error {
	norm := exercises.Normalize(exercises.Clean(name))
	custom := s.custom.All(ctx)
	kept := custom[:0]
	found := false
	for _, existing := range custom {
		if exercises.Normalize(existing) == norm {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return ErrEntryNotFound
	}
	return s.custom.SaveAll(ctx, kept)
}
