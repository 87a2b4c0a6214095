package routes

import (
	"github.com/gin-gonic/gin"

	jobcardhandlers "jobdesk/internal/interfaces/http/handlers/jobcard"
)

type JobCardRouteConfig struct {
	JobCardHandler *jobcardhandlers.JobCardHandler
}

func SetupJobCardRoutes(engine *gin.Engine, config *JobCardRouteConfig) {
	jobcards := engine.Group("/jobcards")
	{
		// Collection operations (no ID parameter)
		jobcards.POST("",
			config.JobCardHandler.CreateJobCard)
		jobcards.GET("",
			config.JobCardHandler.ListJobCards)

		// Ticket-scoped operations act on every row sharing a ticket number
		jobcards.GET("/ticket/:ticket_no",
			config.JobCardHandler.GetTicket)
		jobcards.POST("/ticket/:ticket_no",
			config.JobCardHandler.EditTicket)
		jobcards.DELETE("/ticket/:ticket_no",
			config.JobCardHandler.DeleteTicket)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		jobcards.PATCH("/:id/status",
			config.JobCardHandler.UpdateStatus)

		// Generic parameterized routes (must come LAST)
		jobcards.DELETE("/:id",
			config.JobCardHandler.DeleteJobCard)
	}
}
