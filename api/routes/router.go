// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"duka/internal/auth"
	"duka/internal/buses"
	"duka/internal/deliveries"
	"duka/internal/notifications"
	"duka/internal/seats"
	"duka/internal/shared/config"
	"duka/internal/shared/database"
	"duka/internal/shared/middleware"
	"duka/internal/shared/validation"
	"duka/internal/tickets"
	"duka/internal/trips"
	"duka/pkg/hasura"
	"duka/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived collaborators the handlers share
type Dependencies struct {
	Config     *config.Config
	DB         *database.DB
	GraphQL    hasura.Executor
	Publisher  notifications.Publisher
	Deliveries deliveries.Service
	Denylist   auth.RevocationChecker
	Logger     *logger.Logger
}

// Router holds all route dependencies
type Router struct {
	deps      Dependencies
	validator *validation.Validator
}

// NewRouter creates a new router instance
func NewRouter(deps Dependencies) *Router {
	if deps.Publisher == nil {
		deps.Publisher = notifications.NewNoopPublisher()
	}
	if deps.Deliveries == nil {
		deps.Deliveries = deliveries.NewNoopService()
	}
	if deps.DB == nil {
		deps.DB = &database.DB{}
	}
	return &Router{deps: deps, validator: validation.New()}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	busRepo := buses.NewRepository(r.deps.GraphQL)
	seatService := seats.NewService(seats.NewRepository(r.deps.GraphQL), busRepo, r.deps.Logger)
	tripService := trips.NewService(trips.NewRepository(r.deps.GraphQL), busRepo, r.deps.Logger)
	ticketService := tickets.NewService(
		tickets.NewRepository(r.deps.GraphQL),
		tripService,
		seatService,
		r.deps.Publisher,
		r.deps.Logger,
	)

	root := &engine.RouterGroup

	// Hasura event triggers
	seats.SetupSeatRoutes(root, seats.NewController(seatService, r.validator, r.deps.Deliveries))
	trips.SetupTripRoutes(root, trips.NewController(tripService, r.validator, r.deps.Deliveries))

	// Hasura actions
	tokens := auth.NewService(r.deps.Config.JWT, r.deps.Denylist)
	tickets.SetupTicketRoutes(root, tickets.NewController(ticketService, r.validator), middleware.JWTAuth(tokens, r.deps.Logger))
}

// setupHealthRoutes sets up health check routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.deps.DB.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "duka",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "duka",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
