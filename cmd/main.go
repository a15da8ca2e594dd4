package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jvictorino/briefly/config"
	"github.com/jvictorino/briefly/database"
	_ "github.com/jvictorino/briefly/docs" // Swagger docs
	adminctrl "github.com/jvictorino/briefly/internal/controller/admin"
	publicctrl "github.com/jvictorino/briefly/internal/controller/public"
	"github.com/jvictorino/briefly/internal/logger"
	"github.com/jvictorino/briefly/internal/middleware"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/internal/repository"
	"github.com/jvictorino/briefly/internal/service"
	"github.com/jvictorino/briefly/internal/slug"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Briefly API
// @version 1.0
// @description Form-builder and response-collection API: operators author briefings, respondents answer them at a public slug.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			slug.New,             // Provides *slug.Generator
		),

		// Repositories Layer
		fx.Provide(
			repository.NewBriefingRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminBriefingService,
			service.NewPublicBriefingService,
			service.NewResultsService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminBriefingController,
			publicctrl.NewPublicBriefingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminBriefingCtrl *adminctrl.AdminBriefingController,
	publicBriefingCtrl *publicctrl.PublicBriefingController,
) {
	// Public respondent surface, addressed by briefing slug
	publicAPIGroup := router.Group("/api/v1")
	{
		publicAPIGroup.GET("/briefings/:slug", publicBriefingCtrl.GetBriefing)
		publicAPIGroup.POST("/briefings/:slug/responses", publicBriefingCtrl.SubmitResponse)
	}

	// Operator dashboard surface
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/login", adminBriefingCtrl.Login)

		authed := adminAPIGroup.Group("", middleware.RequireOperator([]byte(cfg.Auth.JWTSecret)))
		authed.GET("/briefings", adminBriefingCtrl.ListBriefings)
		authed.POST("/briefings", adminBriefingCtrl.CreateBriefing)
		authed.DELETE("/briefings/:id", adminBriefingCtrl.DeleteBriefing)
		authed.GET("/briefings/:slug/results", adminBriefingCtrl.GetResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Briefly API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Briefing{},
		&model.Question{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
