package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/repository"
	"learning-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, activity events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("learning_service")

	// Stores
	userRepo := repository.NewUserRepository(database)
	courseRepo := repository.NewCourseRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	energyRepo := repository.NewEnergyLogRepository(database)

	// Catalog + progress ledger
	courseService := service.NewCourseService(courseRepo)
	progressService := service.NewProgressService(userRepo, courseRepo)
	courseHandler := handlers.NewCourseHandler(courseService, progressService)

	// Coaching sessions and assessments
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Daily mood checks
	energyService := service.NewEnergyService(energyRepo)
	energyHandler := handlers.NewEnergyHandler(energyService)

	// Analytics
	statsService := service.NewStatisticsService(userRepo, sessionRepo, energyRepo)
	statsHandler := handlers.NewStatisticsHandler(statsService)

	// Public routes - catalog browsing
	publicCourse := r.Group("/public/learning/course")
	{
		publicCourse.GET("/", courseHandler.ListCourses)
		publicCourse.GET("/:id", courseHandler.GetCourse)
	}

	publicSession := r.Group("/public/learning/session")
	{
		publicSession.GET("/", sessionHandler.ListSessions)
		publicSession.GET("/stats/overview", sessionHandler.StatsOverview)
		publicSession.GET("/:id", sessionHandler.GetSession)
	}

	setupProtectedRoutes(r, courseHandler, sessionHandler, energyHandler, statsHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	courseHandler *handlers.CourseHandler,
	sessionHandler *handlers.SessionHandler,
	energyHandler *handlers.EnergyHandler,
	statsHandler *handlers.StatisticsHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/learning")

	// All protected routes identify the caller through the gateway header.
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// === CATALOG MANAGEMENT ===
	course := protected.Group("/course")
	{
		course.POST("/", courseHandler.CreateCourse)
		course.PUT("/:id", courseHandler.UpdateCourse)
		course.DELETE("/:id", courseHandler.DeleteCourse)
		course.POST("/:id/modules", courseHandler.AddModule)
		course.PUT("/:id/modules/:moduleId", courseHandler.UpdateModule)
		course.DELETE("/:id/modules/:moduleId", courseHandler.DeleteModule)
		course.POST("/:id/modules/:moduleId/lessons", courseHandler.AddLesson)
		course.PUT("/:id/modules/:moduleId/lessons/:lessonId", courseHandler.UpdateLesson)
		course.DELETE("/:id/modules/:moduleId/lessons/:lessonId", courseHandler.DeleteLesson)

		// === PROGRESS LEDGER ===

		course.POST("/:id/lessons/:lessonId/toggle", func(c *gin.Context) {
			courseHandler.ToggleLesson(c)
			if publisher != nil {
				publisher.Publish("course.lesson.toggled", gin.H{
					"course_id": c.Param("id"),
					"lesson_id": c.Param("lessonId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		course.POST("/:id/lessons/:lessonId/complete", func(c *gin.Context) {
			courseHandler.CompleteLesson(c)
			if publisher != nil {
				publisher.Publish("course.lesson.completed", gin.H{
					"course_id": c.Param("id"),
					"lesson_id": c.Param("lessonId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		course.POST("/:id/progress", func(c *gin.Context) {
			courseHandler.UpdateProgress(c)
			if publisher != nil {
				publisher.Publish("course.progress.updated", gin.H{
					"course_id": c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		course.POST("/:id/lessons/:lessonId/quiz/submit", func(c *gin.Context) {
			courseHandler.SubmitQuiz(c)
			if publisher != nil {
				publisher.Publish("course.quiz.submitted", gin.H{
					"course_id": c.Param("id"),
					"lesson_id": c.Param("lessonId"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		course.GET("/:id/certificate", func(c *gin.Context) {
			courseHandler.GetCertificate(c)
			if publisher != nil {
				publisher.Publish("course.certificate.requested", gin.H{
					"course_id": c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	// === COACHING SESSIONS ===
	session := protected.Group("/session")
	{
		session.POST("/", sessionHandler.CreateSession)
		session.PUT("/:id", sessionHandler.UpdateSession)
		session.DELETE("/:id", sessionHandler.DeleteSession)

		session.POST("/:id/assessments", func(c *gin.Context) {
			sessionHandler.AddAssessment(c)
			if publisher != nil {
				publisher.Publish("session.assessment.added", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		session.POST("/:id/complete", func(c *gin.Context) {
			sessionHandler.CompleteSession(c)
			if publisher != nil {
				publisher.Publish("session.completed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})
	}

	// === DAILY MOOD CHECKS ===
	energy := protected.Group("/energy")
	{
		energy.POST("/", func(c *gin.Context) {
			energyHandler.RecordMood(c)
			if publisher != nil {
				publisher.Publish("energy.mood.recorded", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		energy.GET("/", energyHandler.History)
		energy.GET("/today", energyHandler.Today)
	}

	// === ANALYTICS ===
	statistics := protected.Group("/statistics")
	{
		statistics.GET("/", statsHandler.GetUserStatistics)
		statistics.GET("/team", statsHandler.GetTeamStatistics)
	}
}
