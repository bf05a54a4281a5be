package routes

import (
	"freightmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathUsers    = "/users"
	PathCarriers = "/carriers"
)

func addAccountRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, carrierHandler *handlers.CarrierHandler, ratingHandler *handlers.RatingHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Register)
		users.GET("/me", userHandler.Me)
	}

	carriers := rg.Group(PathCarriers)
	{
		carriers.POST("", carrierHandler.Create)
		carriers.GET("", carrierHandler.List)
		carriers.GET("/:id", carrierHandler.GetByID)
		carriers.PUT("/zones", carrierHandler.UpdateZones)
		carriers.GET("/:id/ratings", ratingHandler.ListByCarrier)
	}
}
