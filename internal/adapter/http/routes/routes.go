package routes

import (
	"context"
	"os"
	"strconv"

	_ "freightmarket/docs" // This will be auto-generated
	"freightmarket/internal/adapter/http/handlers"
	"freightmarket/internal/adapter/http/middleware"
	repository2 "freightmarket/internal/adapter/persistence/repository"
	"freightmarket/internal/adapter/ws"
	"freightmarket/internal/infrastructure/database"
	"freightmarket/internal/infrastructure/email"
	"freightmarket/internal/infrastructure/storage"
	"freightmarket/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	logrus.WithField("port", PORT).Info("freight marketplace API listening")
	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	photoStore, err := storage.NewS3PhotoStore(context.Background())
	if err != nil {
		logrus.Fatalf("Failed to configure the photo store: %v", err)
	}
	mailer := email.NewSMTPMailerFromEnv()

	hub := ws.NewHub()
	go hub.Run()

	freightRepo := repository2.NewFreightDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	lifecycleRepo := repository2.NewLifecycleDynamoRepository(ddb)
	carrierRepo := repository2.NewCarrierDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	ratingRepo := repository2.NewRatingDynamoRepository(ddb)
	locationRepo := repository2.NewLocationDynamoRepository(ddb)
	reportRepo := repository2.NewReportDynamoRepository(ddb)

	freightUseCase := usecase.NewFreightUseCase(freightRepo, quoteRepo, lifecycleRepo, carrierRepo, userRepo, hub, mailer, photoStore)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, freightRepo, lifecycleRepo, carrierRepo, userRepo, hub, mailer)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, freightRepo, quoteRepo, userRepo, lifecycleRepo, hub)
	carrierUseCase := usecase.NewCarrierUseCase(carrierRepo, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	locationUseCase := usecase.NewLocationUseCase(locationRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, userRepo, mailer, os.Getenv("REPORT_ADMIN_EMAIL"))

	freightHandler := handlers.NewFreightHandler(freightUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	ratingHandler := handlers.NewRatingHandler(ratingUseCase)
	carrierHandler := handlers.NewCarrierHandler(carrierUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	locationHandler := handlers.NewLocationHandler(locationUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")

	// Public surface: health, the event socket and the zone catalog.
	addPingRoutes(v1)
	v1.GET("/ws", hub.Serve)
	v1.GET("/locations", locationHandler.List)
	v1.GET("/locations/:id", locationHandler.GetByID)

	// Everything else requires a bearer token.
	authed := v1.Group("", middleware.RequireAuth())
	addFreightRoutes(authed, freightHandler, quoteHandler, ratingHandler)
	addBiddingRoutes(authed, quoteHandler)
	addRatingRoutes(authed, ratingHandler)
	addAccountRoutes(authed, userHandler, carrierHandler, ratingHandler)
	addSupportRoutes(authed, locationHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
}
