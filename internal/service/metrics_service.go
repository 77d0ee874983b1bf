package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/dates"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"
)

// Focus kinds, in priority order.
const (
	FocusRest      = "rest"
	FocusRecovery  = "recovery"
	FocusStalled   = "stalled"
	FocusCountdown = "countdown"
	FocusPlan      = "plan"
)

// Focus is the single prioritized recommendation shown on the home screen.
type Focus struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Exercise string `json:"exercise,omitempty"`
}

// Dashboard bundles the derived metrics the home screen renders.
type Dashboard struct {
	Profile    domain.Profile    `json:"profile"`
	Focus      Focus             `json:"focus"`
	TodayKey   string            `json:"todayKey"`
	TodayPlan  domain.DayPlan    `json:"todayPlan"`
	Week       WeekAttendance    `json:"week"`
	Protein    ProteinSummary    `json:"protein"`
	Bodyweight BodyweightStats   `json:"bodyweight"`
	Routine    RoutineRef        `json:"routine"`
}

// RoutineRef identifies the active routine without dragging the full week
// into every dashboard payload.
type RoutineRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MetricsService computes on-demand views over the stores. It holds no state
// of its own; everything is derived per call.
type MetricsService interface {
	Focus(ctx context.Context, now time.Time) Focus
	Dashboard(ctx context.Context, now time.Time) Dashboard
}

type metricsService struct {
	profiles repository.ProfileRepository
	routines RoutineService
	logs     LogService
	lifts    LiftService
}

// NewMetricsService creates a new derived-metrics service.
func NewMetricsService(
	profiles repository.ProfileRepository,
	routines RoutineService,
	logs LogService,
	lifts LiftService,
) MetricsService {
	return &metricsService{
		profiles: profiles,
		routines: routines,
		logs:     logs,
		lifts:    lifts,
	}
}

// Focus evaluates the recommendation rules in strict order; the first match
// wins:
//
//  1. rest day -> recovery message
//  2. trained yesterday on short protein -> go-lighter warning
//  3. a scheduled exercise is stalled (first in list order) -> stalled callout
//  4. workouts still owed this week -> countdown
//  5. otherwise -> today's label, or a generic execution nudge
func (s *metricsService) Focus(ctx context.Context, now time.Time) Focus {
	profile := s.profiles.Get(ctx)
	active := s.routines.Active(ctx)
	today := active.Days[dates.DayKey(now)]

	if today.Rest {
		return Focus{
			Kind:    FocusRest,
			Message: "Rest day. Eat well, sleep, and let the muscle rebuild.",
		}
	}

	yesterday := dates.ToISO(now.AddDate(0, 0, -1))
	if s.logs.Attended(ctx, yesterday) {
		total := s.logs.ProteinFor(ctx, yesterday).Total()
		if total < 0.75*float64(profile.ProteinGoal) {
			return Focus{
				Kind:    FocusRecovery,
				Message: "You trained yesterday but protein came up short. Go lighter today and refuel.",
			}
		}
	}

	for _, ex := range today.Exercises {
		if s.lifts.IsStalled(ctx, ex.Name, DefaultStallLookback) {
			return Focus{
				Kind:     FocusStalled,
				Exercise: ex.Name,
				Message:  fmt.Sprintf("%s has stalled over your last %d sessions. Drop the weight a notch and rebuild.", ex.Name, DefaultStallLookback),
			}
		}
	}

	week := s.logs.WeekAttendance(ctx, now)
	if week.Remaining > 0 {
		noun := "workouts"
		if week.Remaining == 1 {
			noun = "workout"
		}
		return Focus{
			Kind:    FocusCountdown,
			Message: fmt.Sprintf("%d %s left to hit this week's target.", week.Remaining, noun),
		}
	}

	if today.Label != "" {
		return Focus{
			Kind:    FocusPlan,
			Message: fmt.Sprintf("Today: %s. Show up and execute.", today.Label),
		}
	}
	return Focus{Kind: FocusPlan, Message: "Show up and execute today's plan."}
}

func (s *metricsService) Dashboard(ctx context.Context, now time.Time) Dashboard {
	active := s.routines.Active(ctx)
	todayKey := dates.DayKey(now)
	return Dashboard{
		Profile:    s.profiles.Get(ctx),
		Focus:      s.Focus(ctx, now),
		TodayKey:   todayKey,
		TodayPlan:  active.Days[todayKey],
		Week:       s.logs.WeekAttendance(ctx, now),
		Protein:    s.logs.ProteinSummary(ctx, dates.ToISO(now)),
		Bodyweight: s.logs.BodyweightStats(ctx, now),
		Routine:    RoutineRef{ID: active.ID, Name: active.Name},
	}
}
