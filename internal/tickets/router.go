package tickets

import "github.com/gin-gonic/gin"

// SetupTicketRoutes registers the create-ticket action behind requireAuth
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller, requireAuth gin.HandlerFunc) {
	rg.POST("/create-ticket", requireAuth, controller.CreateTicket)
}
