package routes

import (
	"freightmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuotes = "/quotes"

func addBiddingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Submit)
		quotes.POST("/:id/accept", quoteHandler.Accept)
		quotes.POST("/:id/reject", quoteHandler.Reject)
		quotes.DELETE("/:id", quoteHandler.Withdraw)
	}
}
