package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/huaydee/lotto-admin-backend/api/routes"
	"github.com/huaydee/lotto-admin-backend/internal/config"
	"github.com/huaydee/lotto-admin-backend/internal/handlers"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	mongorepo "github.com/huaydee/lotto-admin-backend/internal/repositories/mongodb"
	"github.com/huaydee/lotto-admin-backend/internal/services"
	"github.com/huaydee/lotto-admin-backend/pkg/mongodb"
	"github.com/huaydee/lotto-admin-backend/pkg/settlementapi"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var lotteryRepo repositories.LotteryRepository = mongorepo.NewLotteryRepository(db)
	var rateRepo repositories.RateProfileRepository = mongorepo.NewRateProfileRepository(db)
	var riskRepo repositories.RiskEntryRepository = mongorepo.NewRiskEntryRepository(db)
	var resultRepo repositories.ResultRepository = mongorepo.NewResultRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Outbound settlement client
	settlementClient := settlementapi.NewClient(cfg.Settlement.BaseURL, cfg.Settlement.APIKey, cfg.Settlement.MockAPI)

	// Services
	authService := services.NewAuthService(adminRepo, cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	lotteryService := services.NewLotteryService(lotteryRepo)
	rateService := services.NewRateService(rateRepo)
	riskService := services.NewRiskService(riskRepo)
	resultService := services.NewResultService(resultRepo, settlementClient)

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:    handlers.NewAuthHandler(authService),
		LotteryHandler: handlers.NewLotteryHandler(lotteryService),
		RateHandler:    handlers.NewRateHandler(rateService),
		RiskHandler:    handlers.NewRiskHandler(riskService),
		ResultHandler:  handlers.NewResultHandler(resultService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
