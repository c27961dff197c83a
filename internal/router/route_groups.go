package router

import (
	"atrid_reportes/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes sets up the sales report routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := apiGroup.Group("/reportes")
	{
		reportRoutes.GET("/resumen", reportHandler.GetResumen)
		reportRoutes.GET("/ordenes", reportHandler.GetOrdenes)
		reportRoutes.GET("/ordenes/:id", reportHandler.GetOrdenByID)
		reportRoutes.DELETE("/ordenes/:id", reportHandler.DeleteOrden)
		reportRoutes.DELETE("/seleccion", reportHandler.ClearSeleccion)
		reportRoutes.PUT("/comision", reportHandler.UpdateComision)
	}
}
