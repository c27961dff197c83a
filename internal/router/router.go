package router

import (
	"atrid_reportes/internal/handlers"
	"atrid_reportes/internal/middleware"
	"atrid_reportes/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store *services.OrderStore) {
	reportHandler := handlers.NewReportHandler(store)

	engine.Use(middleware.RequestID())

	apiV1 := engine.Group("/api/v1")
	SetupReportRoutes(apiV1, reportHandler)
}
