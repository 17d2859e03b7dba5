package app

import (
	"net/http"

	"go-recruit/internal/account"
	"go-recruit/internal/applicant"
	"go-recruit/internal/financial"
	"go-recruit/internal/interview"
	"go-recruit/internal/jobposting"
	"go-recruit/internal/mailer"
	"go-recruit/internal/onboarding"
	"go-recruit/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	mail mailer.Mailer,
	logger *zap.Logger,
) {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	applicantRepo := applicant.NewRepository(gormDB)
	jobPostingRepo := jobposting.NewRepository(gormDB)
	interviewRepo := interview.NewRepository(gormDB)
	checklistRepo := onboarding.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)

	// --- External collaborators ---
	financialCfg := financial.LoadConfig()
	financialClient := financial.NewHTTPClient(financialCfg, logger)

	// --- Services ---
	applicantService := applicant.NewService(gormDB, applicantRepo, counterRepo, logger)
	jobPostingService := jobposting.NewService(gormDB, jobPostingRepo, rdb, logger)
	interviewService := interview.NewService(gormDB, interviewRepo, applicantRepo, mail, logger)
	onboardingService := onboarding.NewService(gormDB, checklistRepo, applicantRepo, logger)
	accountService := account.NewService(gormDB, accountRepo, applicantRepo, checklistRepo, logger)
	financialService := financial.NewService(financialCfg, financialClient, applicantRepo, jobPostingRepo, rdb, logger)

	// --- Handlers ---
	applicantHandler := applicant.NewHandlerWithRedis(applicantService, rdb, logger)
	jobPostingHandler := jobposting.NewHandlerWithRedis(jobPostingService, rdb, logger)
	interviewHandler := interview.NewHandlerWithRedis(interviewService, rdb, logger)
	onboardingHandler := onboarding.NewHandlerWithRedis(onboardingService, rdb, logger)
	accountHandler := account.NewHandlerWithRedis(accountService, rdb, logger)
	financialHandler := financial.NewHandlerWithRedis(financialService, rdb, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		applicant.RegisterRoutes(api, applicantHandler, logger)
		jobposting.RegisterRoutes(api, jobPostingHandler, logger)
		interview.RegisterRoutes(api, interviewHandler, logger)
		onboarding.RegisterRoutes(api, onboardingHandler, logger)
		account.RegisterRoutes(api, accountHandler, logger)
		financial.RegisterRoutes(api, financialHandler, logger)

		api.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"service": "HR1",
			})
		})
	}
}
