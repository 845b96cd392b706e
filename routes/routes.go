package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/controllers"
	"github.com/jonathanRossato/treino-app/middlewares"
	"github.com/jonathanRossato/treino-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	auth := controllers.NewAuthController(services.NewUserService(db))
	workoutSvc := services.NewWorkoutService(db)
	workouts := controllers.NewWorkoutController(workoutSvc)
	photos := controllers.NewPhotoController(services.NewPhotoService(db))
	templates := controllers.NewTemplateController(services.NewTemplateService(db))
	cardio := controllers.NewCardioController(services.NewCardioService(db))
	userExercises := controllers.NewUserExerciseController(services.NewUserExerciseService(db))
	library := controllers.NewLibraryController(services.NewLibraryService(db))
	statistics := controllers.NewStatsController(workoutSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	r.POST("/api/auth/session", auth.Session)
	r.GET("/api/exercise-library", library.List)
	r.GET("/api/exercise-library/:muscleGroup", library.ListByMuscleGroup)

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/auth/me", auth.Me)
		api.POST("/auth/logout", auth.Logout)

		api.GET("/workouts", workouts.List)
		api.POST("/workouts", workouts.Create)
		api.GET("/workouts/:id", workouts.GetByID)
		api.PATCH("/workouts/:id", workouts.Update)
		api.DELETE("/workouts/:id", workouts.Delete)
		api.GET("/workouts/:id/exercises", workouts.ExercisesByWorkout)
		api.PATCH("/exercises/:id", workouts.UpdateExercise)

		api.GET("/photos", photos.List)
		api.POST("/photos", photos.Upload)
		api.DELETE("/photos/:id", photos.Delete)

		api.GET("/templates", templates.List)
		api.POST("/templates", templates.Create)
		api.GET("/templates/:id", templates.GetByID)
		api.PATCH("/templates/:id", templates.Update)
		api.DELETE("/templates/:id", templates.Delete)

		api.GET("/cardio", cardio.List)
		api.GET("/cardio/workout/:workoutId", cardio.ListByWorkout)

		api.GET("/user-exercises", userExercises.List)
		api.POST("/user-exercises", userExercises.Create)
		api.PUT("/user-exercises/:id", userExercises.Update)
		api.DELETE("/user-exercises/:id", userExercises.Delete)

		api.GET("/stats/weekly", statistics.Weekly)
		api.GET("/stats/records", statistics.Records)
		api.GET("/stats/calendar", statistics.Calendar)
		api.GET("/stats/calendar/day", statistics.CalendarDay)
		api.GET("/stats/progress", statistics.Progress)
	}

	return r
}
