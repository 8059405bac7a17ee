package seats

import "github.com/gin-gonic/gin"

func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Hasura event triggers
	rg.POST("/create-seat", controller.CreateSeat)                  // bus insert
	rg.POST("/create-trip-bus-seat", controller.CreateTripBusSeat) // trip_bus insert
}
