package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ngobridge/platform-go/docs"
	"github.com/ngobridge/platform-go/internal/api/middleware"
	"github.com/ngobridge/platform-go/internal/api/routes"
	"github.com/ngobridge/platform-go/internal/application"
	"github.com/ngobridge/platform-go/internal/config"
	"github.com/ngobridge/platform-go/internal/config/db"
	"github.com/ngobridge/platform-go/internal/domain/discount"
	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/domain/search"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/ngobridge/platform-go/internal/mailer"
	"github.com/ngobridge/platform-go/internal/notify"
	"github.com/ngobridge/platform-go/internal/repository"
	"github.com/ngobridge/platform-go/internal/ws"
)

// @title NGO Bridge API
// @version 1.0
// @description Role-based marketplace connecting NGOs with funders and service providers.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&profile.NgoProfile{},
		&profile.FunderProfile{},
		&profile.ProviderProfile{},
		&opportunity.FundingOpportunity{},
		&submission.Submission{},
		&discount.DiscountOffer{},
		&search.SavedSearch{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)

	ctx := context.Background()

	var m mailer.Mailer = mailer.LogMailer{}
	if config.EmailEnabled {
		sm, err := mailer.NewSESMailer(ctx, config.AwsRegion, config.EmailFrom)
		if err != nil {
			log.Printf("Warning: SES mailer unavailable, falling back to log mailer: %v", err)
		} else {
			m = sm
		}
	}

	hub := ws.NewHub()
	dispatcher := notify.NewDispatcher(repos.Notification, m, hub, 64)
	dispatcher.Start(ctx)

	services := application.New(repos, dispatcher)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, services, hub)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
