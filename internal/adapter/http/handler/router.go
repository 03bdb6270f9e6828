package handler

import (
	"cash-wallet-tracker/internal/adapter/http/middleware"
	redisStore "cash-wallet-tracker/internal/adapter/storage/redis"
	"cash-wallet-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	InsightSvc     ports.InsightService
	ResetSvc       ports.ResetService
	BackupSvc      ports.BackupService
	AdvisorySvc    ports.AdvisoryService // nil = advisory endpoints disabled
	NotifSvc       ports.NotificationService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(4 << 20)) // 4 MB: backup imports carry full state

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.LedgerSvc)
	txHandler := NewTransactionHandler(deps.LedgerSvc)
	insightHandler := NewInsightHandler(deps.InsightSvc)

	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.Create)
		wallets.GET("", walletHandler.List)
		wallets.GET("/:id", walletHandler.Get)
		wallets.PUT("/:id", walletHandler.Update)
		wallets.DELETE("/:id", walletHandler.Delete)
		wallets.POST("/:id/correct-balance", walletHandler.CorrectBalance)
		wallets.PUT("/:id/limits", walletHandler.EditLimits)
		wallets.POST("/:id/verify-pin", walletHandler.VerifyPIN)
		wallets.GET("/:id/transactions", walletHandler.ListTransactions)
		wallets.POST("/:id/transactions", txHandler.Post)
		wallets.GET("/:id/prediction", insightHandler.LimitPrediction)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", txHandler.List)
		transactions.DELETE("/:id", txHandler.Delete)
	}

	insights := v1.Group("/insights")
	{
		insights.GET("/classifications", insightHandler.Classifications)
		insights.GET("/strategy", insightHandler.CycleStrategy)
		insights.GET("/patterns", insightHandler.TransactionPatterns)
		insights.GET("/analysis", insightHandler.PortfolioAnalysis)
	}

	notifHandler := NewNotificationHandler(deps.NotifSvc)
	notifications := v1.Group("/notifications")
	{
		notifications.GET("", notifHandler.List)
		notifications.POST("/:id/read", notifHandler.MarkRead)
		notifications.DELETE("/:id", notifHandler.Delete)
	}

	systemHandler := NewSystemHandler(deps.ResetSvc, deps.BackupSvc)
	system := v1.Group("/system")
	{
		system.POST("/reset-check", systemHandler.TriggerReset)
		system.GET("/backup", systemHandler.ExportBackup)
		system.POST("/backup", rl("backup_import"), systemHandler.ImportBackup)
	}

	if deps.AdvisorySvc != nil {
		advisoryHandler := NewAdvisoryHandler(deps.AdvisorySvc)
		advisory := v1.Group("/advisory")
		{
			advisory.POST("/classify", rl("advisory_classify"), advisoryHandler.Classify)
			advisory.GET("/patterns", rl("advisory_patterns"), advisoryHandler.Patterns)
			advisory.POST("/advise", rl("advisory_advise"), advisoryHandler.Advise)
		}
	}

	return r
}
