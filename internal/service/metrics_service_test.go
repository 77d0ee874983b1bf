package service

import (
	"context"
	"testing"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocus_RestDayWins(t *testing.T) {
	env := newTestEnv()
	svc := env.metricsService()

	// Sunday is the seeded split's rest day.
	focus := svc.Focus(context.Background(), localDate(2024, 5, 19))
	assert.Equal(t, FocusRest, focus.Kind)
}

func TestFocus_RecoveryAfterShortProtein(t *testing.T) {
	env := newTestEnv()
	logs := env.logService()
	ctx := context.Background()

	// Trained yesterday, logged well under 75% of the 240g goal.
	_, err := logs.ToggleAttendance(ctx, "2024-05-19")
	require.NoError(t, err)
	require.NoError(t, logs.SetProtein(ctx, "2024-05-19", domain.ProteinDay{Lunch: 100}))

	focus := env.metricsService().Focus(ctx, localDate(2024, 5, 20))
	assert.Equal(t, FocusRecovery, focus.Kind)
}

func TestFocus_StalledExerciseCallout(t *testing.T) {
	env := newTestEnv()
	lifts := env.liftService()
	ctx := context.Background()

	// Three flat bench sessions; bench is first on Monday's plan.
	for _, date := range []string{"2024-05-06", "2024-05-13", "2024-05-17"} {
		_, err := lifts.Record(ctx, RecordLiftInput{
			ExerciseName: "Barbell Bench Press",
			Date:         date,
			Sets:         []domain.SetDetail{{Weight: 100, Reps: 5}},
		})
		require.NoError(t, err)
	}

	focus := env.metricsService().Focus(ctx, localDate(2024, 5, 20))
	assert.Equal(t, FocusStalled, focus.Kind)
	assert.Equal(t, "Barbell Bench Press", focus.Exercise)
}

func TestFocus_WeeklyCountdown(t *testing.T) {
	env := newTestEnv()

	// No training history at all: nothing stalled, nothing owed from
	// yesterday, so the weekly target drives the message.
	focus := env.metricsService().Focus(context.Background(), localDate(2024, 5, 20))
	assert.Equal(t, FocusCountdown, focus.Kind)
	assert.Contains(t, focus.Message, "6 workouts")
}

func TestFocus_PlanFallbackWhenWeekIsDone(t *testing.T) {
	env := newTestEnv()
	logs := env.logService()
	ctx := context.Background()

	// Saturday with the whole week already attended and protein squared
	// away after Friday's session.
	for _, d := range []string{"2024-05-20", "2024-05-21", "2024-05-22", "2024-05-23", "2024-05-24", "2024-05-25"} {
		_, err := logs.ToggleAttendance(ctx, d)
		require.NoError(t, err)
	}
	require.NoError(t, logs.SetProtein(ctx, "2024-05-24", domain.ProteinDay{Morning: 60, Lunch: 60, Dinner: 80, Bed: 50}))

	focus := env.metricsService().Focus(ctx, localDate(2024, 5, 25))
	assert.Equal(t, FocusPlan, focus.Kind)
	assert.Contains(t, focus.Message, "Legs")
}

func TestDashboard_Aggregates(t *testing.T) {
	env := newTestEnv()
	logs := env.logService()
	ctx := context.Background()
	now := localDate(2024, 5, 15) // Wednesday

	_, err := logs.AddBodyweight(ctx, "2024-05-14", 181)
	require.NoError(t, err)
	_, err = logs.ToggleAttendance(ctx, "2024-05-13")
	require.NoError(t, err)

	dash := env.metricsService().Dashboard(ctx, now)
	assert.Equal(t, "wed", dash.TodayKey)
	assert.Equal(t, "Legs", dash.TodayPlan.Label)
	assert.Equal(t, 1, dash.Week.Attended)
	assert.Equal(t, "2024-05-15", dash.Protein.Date)
	require.NotNil(t, dash.Bodyweight.Latest)
	assert.Equal(t, 181.0, dash.Bodyweight.Latest.Weight)
	assert.NotEmpty(t, dash.Routine.ID)
}
