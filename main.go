package main

import (
	"os"
	"time"

	"donation-app/config"
	"donation-app/internal/api/sponsor"
	stripewebhooks "donation-app/internal/api/stripewebhook"
	routes "donation-app/internal/app/http"
	stripeinfra "donation-app/internal/infra/stripe"
	"donation-app/internal/logger"
	"donation-app/internal/mail"
	"donation-app/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	gateway := stripeinfra.NewGateway(config.STRIPE_SECRET_KEY)

	mailer, err := mail.NewSMTPMailer(config.SMTP_HOST, config.SMTP_PORT, config.SMTP_USER, config.SMTP_PASS)
	if err != nil {
		logger.Log.Fatal("mailer setup failed", zap.Error(err))
	}

	dispatcher := &notify.Dispatcher{
		Mailer:          mailer,
		Log:             logger.Log,
		From:            config.MAIL_FROM,
		AdminRecipients: config.ADMIN_EMAILS,
		OrgName:         config.ORG_NAME,
		EIN:             config.ORG_EIN,
	}

	sponsorHandler := &sponsor.Handler{
		Gateway:    gateway,
		Dispatcher: dispatcher,
		AppURL:     config.APP_URL,
	}

	var webhookHandler *stripewebhooks.Handler
	if config.STRIPE_WEBHOOK_SECRET != "" {
		webhookHandler = &stripewebhooks.Handler{
			EndpointSecret: config.STRIPE_WEBHOOK_SECRET,
			Sponsor:        sponsorHandler,
			Log:            logger.Log,
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r, sponsorHandler, webhookHandler)

	r.Run(":" + config.PORT)
}
