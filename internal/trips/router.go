package trips

import "github.com/gin-gonic/gin"

func SetupTripRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/create-trip-history", controller.CreateTripHistory) // trip_bus insert
}
