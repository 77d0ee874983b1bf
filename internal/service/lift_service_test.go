package service

import (
	"context"
	"testing"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordLift(t *testing.T, svc LiftService, date string, weight float64, reps int) domain.LiftEntry {
	t.Helper()
	entry, err := svc.Record(context.Background(), RecordLiftInput{
		ExerciseName: "Barbell Bench Press",
		Date:         date,
		Sets:         []domain.SetDetail{{Weight: weight, Reps: reps}},
	})
	require.NoError(t, err)
	return entry
}

func TestRecordLift_TopSetAndValidation(t *testing.T) {
	svc := newTestEnv().liftService()
	ctx := context.Background()

	entry, err := svc.Record(ctx, RecordLiftInput{
		ExerciseName: "  barbell   Bench Press ",
		Date:         "2024-05-10",
		Sets: []domain.SetDetail{
			{Weight: 100, Reps: 5},
			{Weight: 110, Reps: 3},
			{Weight: 110, Reps: 8}, // tie on weight, first occurrence wins
			{Weight: 0, Reps: 10},  // dropped
			{Weight: 60, Reps: 0},  // dropped
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "barbell Bench Press", entry.ExerciseName)
	assert.Equal(t, "barbell bench press", entry.ExerciseNameNormalized)
	assert.Equal(t, 3, entry.SetCount)
	assert.Equal(t, 110.0, entry.TopWeight)
	assert.Equal(t, 3, entry.TopReps)
	assert.True(t, entry.IsPersonalRecord)

	_, err = svc.Record(ctx, RecordLiftInput{
		ExerciseName: "Back Squat",
		Sets:         []domain.SetDetail{{Weight: 0, Reps: 0}},
	})
	assert.ErrorIs(t, err, ErrLiftValidation)

	_, err = svc.Record(ctx, RecordLiftInput{
		ExerciseName: "Back Squat",
		Date:         "10/05/2024",
		Sets:         []domain.SetDetail{{Weight: 100, Reps: 5}},
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestRecordLift_PersonalRecordSequence(t *testing.T) {
	svc := newTestEnv().liftService()

	first := recordLift(t, svc, "2024-05-01", 100, 5)
	second := recordLift(t, svc, "2024-05-03", 90, 5)
	tied := recordLift(t, svc, "2024-05-05", 100, 5)
	third := recordLift(t, svc, "2024-05-07", 105, 5)

	assert.True(t, first.IsPersonalRecord)
	assert.False(t, second.IsPersonalRecord)
	assert.False(t, tied.IsPersonalRecord, "matching the record is not a new record")
	assert.True(t, third.IsPersonalRecord)
}

func TestDeleteLift_KeepsStoredFlagsButRecomputesView(t *testing.T) {
	svc := newTestEnv().liftService()
	ctx := context.Background()

	recordLift(t, svc, "2024-05-01", 100, 5)
	record := recordLift(t, svc, "2024-05-03", 110, 5)
	shadowed := recordLift(t, svc, "2024-05-05", 105, 5)
	assert.False(t, shadowed.IsPersonalRecord)

	require.NoError(t, svc.Delete(ctx, record.ID))

	views := svc.List(ctx, LiftFilter{Exercise: "Barbell Bench Press"})
	require.Len(t, views, 2)

	// Newest-first: the 105 entry now leads the surviving log.
	assert.Equal(t, shadowed.ID, views[0].ID)
	assert.False(t, views[0].IsPersonalRecord, "stored flag is never rewritten")
	assert.True(t, views[0].CurrentPR, "view reflects the log as it stands")

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrLiftNotFound)
}

func TestListLifts_FilterAndLimit(t *testing.T) {
	env := newTestEnv()
	svc := env.liftService()
	ctx := context.Background()

	recordLift(t, svc, "2024-05-01", 100, 5)
	recordLift(t, svc, "2024-05-03", 102, 5)
	recordLift(t, svc, "2024-05-05", 104, 5)
	_, err := svc.Record(ctx, RecordLiftInput{
		ExerciseName: "Back Squat",
		Date:         "2024-05-04",
		Sets:         []domain.SetDetail{{Weight: 140, Reps: 5}},
	})
	require.NoError(t, err)

	all := svc.List(ctx, LiftFilter{})
	require.Len(t, all, 4)
	assert.Equal(t, "2024-05-05", all[0].Date, "log is newest-first")

	// Synonyms resolve before matching.
	bench := svc.List(ctx, LiftFilter{Exercise: "barbell bench press"})
	assert.Len(t, bench, 3)

	ranged := svc.List(ctx, LiftFilter{From: "2024-05-02", To: "2024-05-04"})
	assert.Len(t, ranged, 2)

	limited := svc.List(ctx, LiftFilter{Limit: 2})
	assert.Len(t, limited, 2)
}

func TestStats_WeekWindows(t *testing.T) {
	svc := newTestEnv().liftService()
	now := localDate(2024, 5, 15)

	recordLift(t, svc, "2024-05-15", 100, 5) // today
	recordLift(t, svc, "2024-05-12", 104, 5) // 3 days ago
	recordLift(t, svc, "2024-05-05", 110, 5) // 10 days ago

	stats := svc.Stats(context.Background(), "Barbell Bench Press", now)
	assert.Equal(t, 3, stats.Sessions)
	require.NotNil(t, stats.LifetimeMax)
	assert.Equal(t, 110.0, *stats.LifetimeMax)
	require.NotNil(t, stats.ThisWeekMax)
	assert.Equal(t, 104.0, *stats.ThisWeekMax)
	require.NotNil(t, stats.LastWeekMax)
	assert.Equal(t, 110.0, *stats.LastWeekMax)
}

func TestIsStalled(t *testing.T) {
	ctx := context.Background()

	t.Run("fewer sessions than lookback", func(t *testing.T) {
		svc := newTestEnv().liftService()
		recordLift(t, svc, "2024-05-01", 100, 5)
		recordLift(t, svc, "2024-05-03", 100, 5)
		assert.False(t, svc.IsStalled(ctx, "Barbell Bench Press", 3))
	})

	t.Run("flat weights stall", func(t *testing.T) {
		svc := newTestEnv().liftService()
		recordLift(t, svc, "2024-05-01", 100, 5)
		recordLift(t, svc, "2024-05-03", 100, 5)
		recordLift(t, svc, "2024-05-05", 100, 5)
		assert.True(t, svc.IsStalled(ctx, "Barbell Bench Press", 3))
	})

	t.Run("progress clears the stall", func(t *testing.T) {
		svc := newTestEnv().liftService()
		recordLift(t, svc, "2024-05-01", 100, 5)
		recordLift(t, svc, "2024-05-03", 100, 5)
		recordLift(t, svc, "2024-05-05", 102.5, 5)
		assert.False(t, svc.IsStalled(ctx, "Barbell Bench Press", 3))
	})

	t.Run("regression stalls", func(t *testing.T) {
		svc := newTestEnv().liftService()
		recordLift(t, svc, "2024-05-01", 105, 5)
		recordLift(t, svc, "2024-05-03", 100, 5)
		recordLift(t, svc, "2024-05-05", 102.5, 5)
		assert.True(t, svc.IsStalled(ctx, "Barbell Bench Press", 3))
	})
}

func TestTrend_MetricsAndOrder(t *testing.T) {
	svc := newTestEnv().liftService()
	ctx := context.Background()

	recordLift(t, svc, "2024-05-01", 100, 5)
	recordLift(t, svc, "2024-05-03", 102, 5)
	recordLift(t, svc, "2024-05-05", 104, 1)

	feed, err := svc.Trend(ctx, "Barbell Bench Press", MetricTopWeight, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-03", "2024-05-05"}, feed.Labels)
	assert.Equal(t, []float64{100, 102, 104}, feed.Series)

	e1rm, err := svc.Trend(ctx, "Barbell Bench Press", MetricOneRepMax, 2)
	require.NoError(t, err)
	require.Len(t, e1rm.Series, 2)
	assert.InDelta(t, 102*(1+5.0/30), e1rm.Series[0], 0.001)
	assert.Equal(t, 104.0, e1rm.Series[1], "single rep is taken as the max itself")

	_, err = svc.Trend(ctx, "Barbell Bench Press", "bogus", 0)
	assert.Error(t, err)
}

func TestEstimateOneRepMax(t *testing.T) {
	assert.Equal(t, 0.0, EstimateOneRepMax(100, 0))
	assert.Equal(t, 100.0, EstimateOneRepMax(100, 1))
	assert.InDelta(t, 116.67, EstimateOneRepMax(100, 5), 0.01)
}

func TestTargets(t *testing.T) {
	svc := newTestEnv().liftService()
	ctx := context.Background()

	require.NoError(t, svc.SetTarget(ctx, "Barbell Bench Press", 120))
	assert.ErrorIs(t, svc.SetTarget(ctx, "Back Squat", 0), ErrTargetInvalid)

	targets := svc.Targets(ctx)
	assert.Equal(t, 120.0, targets["barbell bench press"])

	recordLift(t, svc, "2024-05-01", 100, 5)
	stats := svc.Stats(ctx, "Barbell Bench Press", localDate(2024, 5, 2))
	require.NotNil(t, stats.TargetWeight)
	require.NotNil(t, stats.TargetProgress)
	assert.InDelta(t, 100.0/120.0, *stats.TargetProgress, 0.001)

	require.NoError(t, svc.ClearTarget(ctx, "barbell bench press"))
	assert.Empty(t, svc.Targets(ctx))
}
