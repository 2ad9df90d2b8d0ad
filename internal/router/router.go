package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/insyd/notify-server/internal/handlers"
	"github.com/insyd/notify-server/internal/models"
	"github.com/insyd/notify-server/internal/repositories"
	"github.com/insyd/notify-server/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.HTTPErrorHandler = errorHandler
	log.Println("Global middleware configured.")
}

// errorHandler renders 4xx rejections with their descriptive message and
// collapses everything else to a generic 500 body. Internal error detail
// is logged, never sent to the client.
func errorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, echo.Map{"error": message})
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, roster []string) {
	if err := pgdb.AutoMigrate(&models.LikeEvent{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	mongoDB := mgClient.Database("insyd")

	// --- Initialize Repositories ---
	postRepo := repositories.NewMongoPostRepository(mongoDB)
	notificationRepo := repositories.NewMongoNotificationRepository(mongoDB)
	likeRepo := repositories.NewPostgresLikeEventRepository(pgdb)

	// --- Fan-out engine (synchronous, roster-driven) ---
	fanout := services.NewSyncFanoutEngine(roster, notificationRepo)
	log.Printf("Fan-out roster: %v", roster)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", handlers.Root)

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, fanout)
	postHandler.RegisterPostRoutes(e.Group(""))
	log.Println("Post routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, fanout)
	likeHandler.RegisterLikeRoutes(e.Group(""))
	log.Println("Like routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(e.Group(""))
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
