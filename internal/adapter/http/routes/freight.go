package routes

import (
	"freightmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathFreights = "/freights"

func addFreightRoutes(rg *gin.RouterGroup, freightHandler *handlers.FreightHandler, quoteHandler *handlers.QuoteHandler, ratingHandler *handlers.RatingHandler) {
	freights := rg.Group(PathFreights)
	{
		freights.POST("", freightHandler.Create)
		freights.GET("", freightHandler.List)
		freights.GET("/mine", freightHandler.ListMine)
		freights.GET("/available", freightHandler.ListAvailable)
		freights.GET("/assigned", freightHandler.ListAssigned)
		freights.GET("/history", freightHandler.ListHistory)
		freights.GET("/:id", freightHandler.GetByID)
		freights.PATCH("/:id", freightHandler.Update)
		freights.DELETE("/:id", freightHandler.Delete)

		// Trip lifecycle.
		freights.POST("/:id/start", freightHandler.StartTrip)
		freights.POST("/:id/complete", freightHandler.CompleteTrip)
		freights.POST("/:id/cancel", freightHandler.CancelByClient)
		freights.POST("/:id/cancel-by-carrier", freightHandler.CancelByCarrier)

		// Cargo photo.
		freights.POST("/:id/photo", freightHandler.UploadPhoto)
		freights.GET("/:id/photo", freightHandler.GetPhoto)

		// Nested reads.
		freights.GET("/:id/quotes", quoteHandler.ListByFreight)
		freights.GET("/:id/rating", ratingHandler.GetByFreight)
	}
}
