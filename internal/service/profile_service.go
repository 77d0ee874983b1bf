package service

import (
	"context"
	"errors"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileValidation = errors.New("profile validation failed")
)

// ProfileUpdate carries the fields of a profile save. Nil fields keep their
// previous value, which gives the save its shallow-merge semantics.
type ProfileUpdate struct {
	Name         *string
	ProteinGoal  *int
	WeekStart    *string
	HideRestDays *bool
}

// AppState is the small persisted UI state that rides along in exports.
type AppState struct {
	ActiveScreen   string `json:"activeScreen"`
	OnboardingDone bool   `json:"onboardingDone"`
	LastBackup     string `json:"lastBackup,omitempty"`
}

// ProfileService owns the profile record and the app-state flags.
type ProfileService interface {
	Get(ctx context.Context) domain.Profile
	Update(ctx context.Context, update ProfileUpdate) (domain.Profile, error)
	State(ctx context.Context) AppState
	SetActiveScreen(ctx context.Context, screen string) error
	CompleteOnboarding(ctx context.Context) error
}

type profileService struct {
	profiles repository.ProfileRepository
	state    repository.StateRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles repository.ProfileRepository, state repository.StateRepository) ProfileService {
	return &profileService{profiles: profiles, state: state}
}

func (s *profileService) Get(ctx context.Context) domain.Profile {
	return s.profiles.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, update ProfileUpdate) (domain.Profile, error) {
	p := s.profiles.Get(ctx)

	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.ProteinGoal != nil {
		if *update.ProteinGoal <= 0 {
			return domain.Profile{}, ErrProfileValidation
		}
		p.ProteinGoal = *update.ProteinGoal
	}
	if update.WeekStart != nil {
		if *update.WeekStart != domain.WeekStartMonday && *update.WeekStart != domain.WeekStartSunday {
			return domain.Profile{}, ErrProfileValidation
		}
		p.WeekStart = *update.WeekStart
	}
	if update.HideRestDays != nil {
		p.HideRestDays = *update.HideRestDays
	}

	if err := s.profiles.Save(ctx, p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func (s *profileService) State(ctx context.Context) AppState {
	return AppState{
		ActiveScreen:   s.state.ActiveScreen(ctx),
		OnboardingDone: s.state.OnboardingDone(ctx),
		LastBackup:     s.state.LastBackup(ctx),
	}
}

func (s *profileService) SetActiveScreen(ctx context.Context, screen string) error {
	return s.state.SetActiveScreen(ctx, screen)
}

func (s *profileService) CompleteOnboarding(ctx context.Context) error {
	return s.state.SetOnboardingDone(ctx, true)
}
