package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/huaydee/lotto-admin-backend/internal/config"
	"github.com/huaydee/lotto-admin-backend/internal/handlers"
	"github.com/huaydee/lotto-admin-backend/internal/middleware"
)

// HandlerDependencies groups the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler    *handlers.AuthHandler
	LotteryHandler *handlers.LotteryHandler
	RateHandler    *handlers.RateHandler
	RiskHandler    *handlers.RiskHandler
	ResultHandler  *handlers.ResultHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/bet-types", deps.LotteryHandler.GetBetTypes)

		lotteries := protected.Group("/lotteries")
		{
			lotteries.POST("", deps.LotteryHandler.CreateLottery)
			lotteries.GET("", deps.LotteryHandler.GetLotteries)
			lotteries.GET("/:id", deps.LotteryHandler.GetLotteryByID)
			lotteries.PUT("/:id", deps.LotteryHandler.UpdateLottery)
			lotteries.DELETE("/:id", deps.LotteryHandler.DeleteLottery)
			lotteries.GET("/:id/round", deps.LotteryHandler.GetRoundStatus)

			lotteries.GET("/:id/risk", deps.RiskHandler.GetRound)
			lotteries.POST("/:id/risk", deps.RiskHandler.CommitBatch)
			lotteries.DELETE("/:id/risk", deps.RiskHandler.ClearRound)

			lotteries.POST("/:id/results", deps.ResultHandler.PostResult)
			lotteries.GET("/:id/results", deps.ResultHandler.GetResult)
		}

		risk := protected.Group("/risk")
		{
			risk.POST("/distribute", deps.RiskHandler.Distribute)
			risk.DELETE("/:entryId", deps.RiskHandler.DeleteEntry)
		}

		profiles := protected.Group("/rate-profiles")
		{
			profiles.POST("", deps.RateHandler.CreateProfile)
			profiles.GET("", deps.RateHandler.GetProfiles)
			profiles.GET("/:id", deps.RateHandler.GetProfileByID)
			profiles.GET("/:id/effective", deps.RateHandler.GetEffectiveRates)
			profiles.PUT("/:id", deps.RateHandler.UpdateProfile)
			profiles.DELETE("/:id", deps.RateHandler.DeleteProfile)
		}
	}

	return router
}
