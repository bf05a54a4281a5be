package routes

import (
	"freightmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRatings = "/ratings"

func addRatingRoutes(rg *gin.RouterGroup, ratingHandler *handlers.RatingHandler) {
	ratings := rg.Group(PathRatings)
	{
		ratings.POST("", ratingHandler.Create)
	}
}
