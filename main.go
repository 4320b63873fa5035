package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"assessment-service/internal/adaptive"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/selection"
	"assessment-service/internal/service"

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
	defer db.CloseMongo()

	// RabbitMQ event publisher (optional)
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
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("assessment_service")

	// Item pool
	itemRepo := repository.NewItemRepository(database)
	poolManager := selection.NewPoolManager(itemRepo)
	itemService := service.NewItemService(itemRepo, poolManager)
	itemHandler := handlers.NewItemHandler(itemService)

	// Examinees
	examineeRepo := repository.NewExamineeRepository(database)
	examineeService := service.NewExamineeService(examineeRepo)
	examineeHandler := handlers.NewExamineeHandler(examineeService)

	// Sessions and responses
	sessionRepo := repository.NewSessionRepository(database)
	responseRepo := repository.NewResponseRepository(database)
	resultRepo := repository.NewResultRepository(database)
	sessionService := service.NewSessionService(
		sessionRepo,
		responseRepo,
		resultRepo,
		examineeRepo,
		poolManager,
		adaptive.DefaultConfig(),
	)
	responseService := service.NewResponseService(responseRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService, responseService)

	// Results
	resultService := service.NewResultService(resultRepo)
	resultHandler := handlers.NewResultHandler(resultService)

	// Public routes - items (read-only, calibration params included for
	// authoring tools; the mobile client only consumes served items)
	publicItem := r.Group("/public/assessment/item")
	{
		publicItem.GET("/", itemHandler.ListItems)
		publicItem.GET("/:id", itemHandler.GetItem)
	}

	// Protected routes - item authoring
	protectedItem := r.Group("/protected/assessment/item")
	protectedItem.Use(requireUserID())
	{
		protectedItem.POST("/", itemHandler.CreateItem)
		protectedItem.POST("/bulk", itemHandler.BulkImport)
	}

	publicExaminee := r.Group("/public/assessment/examinee")
	{
		publicExaminee.GET("/:id", examineeHandler.GetExaminee)
		publicExaminee.GET("/:id/results", resultHandler.GetResultsByExaminee)
	}

	setupSessionRoutes(r, sessionHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6677"
	}
	r.Run(":" + port)
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, publisher *event.EventPublisher) {
	protectedSession := r.Group("/protected/assessment/session")
	protectedSession.Use(requireUserID())
	{
		// Create new adaptive session; start theta carried over from the
		// examinee profile
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil {
				publisher.Publish("assessment.session.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Next item by maximum information (read-only: repeat calls
		// without a response return the same item)
		protectedSession.GET("/:id/next", func(c *gin.Context) {
			sessionHandler.NextItem(c)
			if publisher != nil {
				publisher.Publish("assessment.item.served", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Submit a response; ability re-estimated server-side
		protectedSession.POST("/:id/response", func(c *gin.Context) {
			sessionHandler.SubmitResponse(c)
			if publisher != nil {
				publisher.Publish("assessment.response.recorded", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Final summary for a completed session
		protectedSession.GET("/:id/result", func(c *gin.Context) {
			sessionHandler.GetResult(c)
			if publisher != nil {
				publisher.Publish("assessment.result.requested", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Recorded responses in administration order
		protectedSession.GET("/:id/responses", sessionHandler.GetSessionResponses)

		// Calibrated pool diagnostics
		protectedSession.GET("/pool/info", sessionHandler.GetPoolInfo)
	}

	// Public session routes - read-only state
	publicSession := r.Group("/public/assessment/session")
	{
		publicSession.GET("/:id", sessionHandler.GetSession)
	}
}

// requireUserID rejects requests without the X-User-ID header set by the
// gateway's auth middleware.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
