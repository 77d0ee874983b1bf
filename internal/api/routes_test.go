package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository/kvstore"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, authEnabled bool) (*gin.Engine, service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := kv.NewAdapter(kv.NewMemoryStore(), "")
	profileRepo := kvstore.NewProfileRepository(adapter)
	routineRepo := kvstore.NewRoutineRepository(adapter)
	liftRepo := kvstore.NewLiftRepository(adapter)
	bodyweightRepo := kvstore.NewBodyweightRepository(adapter)
	attendanceRepo := kvstore.NewAttendanceRepository(adapter)
	proteinRepo := kvstore.NewProteinRepository(adapter)
	targetRepo := kvstore.NewTargetRepository(adapter)
	customRepo := kvstore.NewCustomExerciseRepository(adapter)
	stateRepo := kvstore.NewStateRepository(adapter)

	authService := service.NewAuthService(stateRepo, authEnabled, "test-secret", time.Hour)
	routineService := service.NewRoutineService(routineRepo)
	liftService := service.NewLiftService(liftRepo, targetRepo)
	logService := service.NewLogService(bodyweightRepo, attendanceRepo, proteinRepo, profileRepo, routineService)

	router := gin.New()
	SetupRoutes(router, adapter, Services{
		Auth:    authService,
		Profile: service.NewProfileService(profileRepo, stateRepo),
		Routine: routineService,
		Lift:    liftService,
		Log:     logService,
		Library: service.NewLibraryService(customRepo),
		Metrics: service.NewMetricsService(profileRepo, routineService, logService, liftService),
		Backup:  service.NewBackupService(profileRepo, routineRepo, liftRepo, bodyweightRepo, attendanceRepo, proteinRepo, stateRepo, nil),
		Version: service.NewVersionService(stateRepo, "", "test"),
	})
	return router, authService
}

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPingAndHealth(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doJSON(router, http.MethodGet, "/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestLiftEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doJSON(router, http.MethodPost, "/api/v1/lifts", gin.H{
		"exerciseName": "Barbell Bench Press",
		"date":         "2024-05-10",
		"sets":         []gin.H{{"weight": 100, "reps": 5}},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"isPersonalRecord":true`)

	rec = doJSON(router, http.MethodPost, "/api/v1/lifts", gin.H{
		"exerciseName": "Barbell Bench Press",
		"date":         "10-05-2024",
		"sets":         []gin.H{{"weight": 100, "reps": 5}},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/lifts?exercise=Barbell+Bench+Press", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []service.LiftView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.True(t, views[0].CurrentPR)
}

func TestRoutineEndpointsSeedDefault(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doJSON(router, http.MethodGet, "/api/v1/routines/active", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Push / Pull / Legs")

	rec = doJSON(router, http.MethodGet, "/api/v1/routines/templates", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "upper-lower")
}

func TestPinLockFlow(t *testing.T) {
	router, authService := newTestRouter(t, true)
	ctx := context.Background()

	// No PIN yet: everything passes.
	rec := doJSON(router, http.MethodGet, "/api/v1/profile", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, authService.SetPin(ctx, "", "1234"))

	rec = doJSON(router, http.MethodGet, "/api/v1/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/v1/auth/unlock", gin.H{"pin": "9999"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/api/v1/auth/unlock", gin.H{"pin": "1234"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var unlock struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unlock))
	require.NotEmpty(t, unlock.Token)

	rec = doJSON(router, http.MethodGet, "/api/v1/profile", nil, map[string]string{
		"Authorization": "Bearer " + unlock.Token,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBackupImportRejectsMalformedDocument(t *testing.T) {
	router, _ := newTestRouter(t, false)

	rec := doJSON(router, http.MethodPost, "/api/v1/backup/import", gin.H{
		"v": 1, "profile": gin.H{}, "bwLogs": []any{}, "attendance": []any{},
		"proteinMap": []any{}, // wrong shape
		"lifts":      []any{}, "routines": []any{},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/v1/backup/export", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"v":1`)
}
