package app

import (
	"os"
	"strconv"
	"time"

	"go-recruit/internal/mailer"
	"go-recruit/internal/middleware"
	"go-recruit/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	// SMTP opsional: tanpa host, undangan interview hanya dicatat di log
	var mail mailer.Mailer
	if host := os.Getenv("SMTP_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if port == 0 {
			port = 587
		}
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     host,
			Port:     port,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
			Timeout:  5 * time.Second,
		}, logger)
	} else {
		logger.Warn("SMTP_HOST not set, interview invitations disabled")
	}

	// 2. Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Idempotency(redisClient))

	// 3. Register Modules & Routes
	registerModules(router, gormDB, redisClient, mail, logger)

	return nil
}
