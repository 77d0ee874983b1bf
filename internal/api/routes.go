package api

import (
	"net/http"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/kv"
	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Auth    service.AuthService
	Profile service.ProfileService
	Routine service.RoutineService
	Lift    service.LiftService
	Log     service.LogService
	Library service.LibraryService
	Metrics service.MetricsService
	Backup  service.BackupService
	Version service.VersionService
}

func SetupRoutes(router *gin.Engine, adapter *kv.Adapter, services Services) {
	authHandler := NewAuthHandler(services.Auth)
	profileHandler := NewProfileHandler(services.Profile)
	routineHandler := NewRoutineHandler(services.Routine)
	liftHandler := NewLiftHandler(services.Lift)
	logHandler := NewLogHandler(services.Log)
	libraryHandler := NewLibraryHandler(services.Library)
	metricsHandler := NewMetricsHandler(services.Metrics)
	backupHandler := NewBackupHandler(services.Backup)
	versionHandler := NewVersionHandler(services.Version)

	authMiddleware := AuthMiddleware(services.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Health reports the persistence layer's last write outcome.
	router.GET("/health", func(c *gin.Context) {
		lastWriteAt, lastWriteErr := adapter.LastWrite()
		resp := gin.H{"status": "ok"}
		if !lastWriteAt.IsZero() {
			resp["lastWriteAt"] = lastWriteAt.Format(time.RFC3339)
		}
		if lastWriteErr != nil {
			resp["status"] = "degraded"
			resp["lastWriteError"] = lastWriteErr.Error()
		}
		c.JSON(http.StatusOK, resp)
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.GET("/status", authHandler.Status)
			authGroup.POST("/unlock", authHandler.Unlock)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// PIN management needs an unlocked session once a PIN exists.
		protected.PUT("/auth/pin", authHandler.SetPin)
		protected.DELETE("/auth/pin", authHandler.ClearPin)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
		protected.GET("/state", profileHandler.GetState)
		protected.PUT("/state/screen", profileHandler.SetActiveScreen)
		protected.POST("/state/onboarding", profileHandler.CompleteOnboarding)

		routineGroup := protected.Group("/routines")
		{
			routineGroup.GET("", routineHandler.ListRoutines)
			routineGroup.POST("", routineHandler.CreateRoutine)
			routineGroup.GET("/templates", routineHandler.ListTemplates)
			routineGroup.GET("/active", routineHandler.GetActive)
			routineGroup.PUT("/active", routineHandler.SetActive)
			routineGroup.GET("/:id", routineHandler.GetRoutine)
			routineGroup.PUT("/:id", routineHandler.RenameRoutine)
			routineGroup.DELETE("/:id", routineHandler.DeleteRoutine)
			routineGroup.POST("/:id/duplicate", routineHandler.DuplicateRoutine)
			routineGroup.PUT("/:id/days/:day", routineHandler.UpdateDay)
		}

		liftGroup := protected.Group("/lifts")
		{
			liftGroup.GET("", liftHandler.ListLifts)
			liftGroup.POST("", liftHandler.RecordLift)
			liftGroup.GET("/stats", liftHandler.GetStats)
			liftGroup.GET("/trend", liftHandler.GetTrend)
			liftGroup.GET("/targets", liftHandler.GetTargets)
			liftGroup.PUT("/targets", liftHandler.SetTarget)
			liftGroup.DELETE("/targets", liftHandler.ClearTarget)
			liftGroup.DELETE("/:id", liftHandler.DeleteLift)
		}

		bodyweightGroup := protected.Group("/bodyweight")
		{
			bodyweightGroup.GET("", logHandler.ListBodyweight)
			bodyweightGroup.POST("", logHandler.AddBodyweight)
			bodyweightGroup.GET("/stats", logHandler.BodyweightStats)
			bodyweightGroup.GET("/series", logHandler.BodyweightSeries)
			bodyweightGroup.DELETE("/:date", logHandler.DeleteBodyweight)
		}

		attendanceGroup := protected.Group("/attendance")
		{
			attendanceGroup.GET("", logHandler.ListAttendance)
			attendanceGroup.POST("/toggle", logHandler.ToggleAttendance)
			attendanceGroup.GET("/week", logHandler.WeekAttendance)
		}

		proteinGroup := protected.Group("/protein")
		{
			proteinGroup.GET("/:date", logHandler.GetProtein)
			proteinGroup.PUT("/:date", logHandler.SetProtein)
			proteinGroup.GET("/:date/summary", logHandler.ProteinSummary)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", libraryHandler.ListExercises)
			exerciseGroup.POST("/custom", libraryHandler.AddCustomExercise)
			exerciseGroup.DELETE("/custom/:name", libraryHandler.RemoveCustomExercise)
		}

		protected.GET("/focus", metricsHandler.GetFocus)
		protected.GET("/dashboard", metricsHandler.GetDashboard)

		backupGroup := protected.Group("/backup")
		{
			backupGroup.GET("/export", backupHandler.Export)
			backupGroup.POST("/import", backupHandler.Import)
			backupGroup.POST("/offsite", backupHandler.UploadOffsite)
		}

		protected.GET("/version", versionHandler.GetStatus)
		protected.POST("/version/applied", versionHandler.MarkApplied)
	}
}
