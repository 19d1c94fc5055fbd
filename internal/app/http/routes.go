package routes

import (
	"donation-app/internal/api/sponsor"
	stripewebhooks "donation-app/internal/api/stripewebhook"
	"donation-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the donation pipeline's HTTP surface. The webhook
// route is registered only when a webhook handler is configured; the
// success-redirect trigger is the default.
func RegisterRoutes(r *gin.Engine, sponsorHandler *sponsor.Handler, webhookHandler *stripewebhooks.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if webhookHandler != nil {
		// Raw body needed for signature verification: no sanitization here.
		r.POST("/webhook", webhookHandler.HandleWebhook)
	}

	r.GET("/donation-quote", sponsorHandler.Quote)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/create-payment", sponsorHandler.CreatePayment)
	public.POST("/process-payment-success", sponsorHandler.ProcessPaymentSuccess)
}
