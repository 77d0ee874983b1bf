package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/api"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/config"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/logging"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository/kvstore"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("could not load config: %v", err)
	}

	logging.Setup(cfg.Log)
	logrus.Info("starting gym dashboard server")

	// --- Database Connection ---
	dbClient, err := kv.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() {
		logrus.Info("disconnecting MongoDB")
		if err := kv.DisconnectDB(dbClient); err != nil {
			logrus.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("database connection established")

	// --- Persistence Adapter ---
	store := kv.NewMongoStore(appDB, cfg.Database.Collection)
	adapter := kv.NewAdapter(store, cfg.Database.KeyPrefix)
	adapter.OnWrite(func(key string, at time.Time) {
		logrus.WithFields(logrus.Fields{"key": key, "at": at.Format(time.RFC3339)}).Debug("document written")
	})

	// --- Initialize Offsite Backup Storage ---
	var offsite storage.BackupStorage
	if cfg.Backup.Enabled {
		offsite, err = storage.NewS3Storage(cfg.Backup)
		if err != nil {
			logrus.Fatalf("failed to initialize offsite backup storage: %v", err)
		}
	}

	// --- Initialize Repositories ---
	profileRepo := kvstore.NewProfileRepository(adapter)
	routineRepo := kvstore.NewRoutineRepository(adapter)
	liftRepo := kvstore.NewLiftRepository(adapter)
	bodyweightRepo := kvstore.NewBodyweightRepository(adapter)
	attendanceRepo := kvstore.NewAttendanceRepository(adapter)
	proteinRepo := kvstore.NewProteinRepository(adapter)
	targetRepo := kvstore.NewTargetRepository(adapter)
	customExerciseRepo := kvstore.NewCustomExerciseRepository(adapter)
	stateRepo := kvstore.NewStateRepository(adapter)

	// --- Initialize Services ---
	authService := service.NewAuthService(stateRepo, cfg.Auth.Enabled, cfg.Auth.JWTSecret, cfg.Auth.Expiration)
	profileService := service.NewProfileService(profileRepo, stateRepo)
	routineService := service.NewRoutineService(routineRepo)
	liftService := service.NewLiftService(liftRepo, targetRepo)
	logService := service.NewLogService(bodyweightRepo, attendanceRepo, proteinRepo, profileRepo, routineService)
	libraryService := service.NewLibraryService(customExerciseRepo)
	metricsService := service.NewMetricsService(profileRepo, routineService, logService, liftService)
	backupService := service.NewBackupService(profileRepo, routineRepo, liftRepo, bodyweightRepo, attendanceRepo, proteinRepo, stateRepo, offsite)
	versionService := service.NewVersionService(stateRepo, cfg.Version.DescriptorURL, cfg.Version.Current)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	api.SetupRoutes(router, adapter, api.Services{
		Auth:    authService,
		Profile: profileService,
		Routine: routineService,
		Lift:    liftService,
		Log:     logService,
		Library: libraryService,
		Metrics: metricsService,
		Backup:  backupService,
		Version: versionService,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.Infof("server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server exiting")
}
