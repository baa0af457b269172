// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/database"
	"voyago/database/repository"
	"voyago/graphapi"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/chatbot"
	"voyago/services/recommend"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitContextCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream clients and repositories.
	graphClient := graphapi.NewClient(config.AppConfig.GraphAPIURL, logger)
	packageRepo := repository.NewMongoPackageRepo(database.PackagesCollection())

	// Recommendation engine.
	engineCfg := recommend.DefaultConfig()
	engineCfg.MaxResults = config.AppConfig.MaxRecommendations
	engineCfg.WeightByRating = config.AppConfig.WeightByRating
	engineCfg.UseBoosts = config.AppConfig.UseBoosts
	engine := recommend.NewEngine(engineCfg, logger)

	// Chatbot service.
	classifier, err := chatbot.NewClassifier()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to fit intent classifier: %v", err)
	}
	ctxStore := chatbot.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	chatService := &chatbot.DefaultChatService{
		Classifier:   classifier,
		ContextStore: ctxStore,
		PackageRepo:  packageRepo,
		Bookings:     graphClient,
		Logger:       logger,
	}

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Recommend: handlers.NewRecommendHandler(engine, graphClient, logger),
		Chat:      handlers.NewChatHandler(chatService, logger),
		Themes:    handlers.NewThemeHandler(graphClient, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
