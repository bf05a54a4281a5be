package routes

import (
	"freightmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLocations = "/locations"
	PathReports   = "/reports"
)

func addSupportRoutes(rg *gin.RouterGroup, locationHandler *handlers.LocationHandler, reportHandler *handlers.ReportHandler) {
	locations := rg.Group(PathLocations)
	{
		locations.POST("", locationHandler.Create)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("", reportHandler.Create)
	}
}
