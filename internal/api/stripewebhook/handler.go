package stripewebhooks

import (
	"encoding/json"
	"io"
	"net/http"

	"donation-app/internal/api/sponsor"

	"github.com/gin-gonic/gin"
	stripeapi "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// Handler drives the post-payment pipeline from Stripe's webhook instead
// of the success-redirect landing. Only one of the two triggers should be
// active for a deployment: notifications are not deduplicated, so both
// firing for the same session sends duplicate emails.
type Handler struct {
	EndpointSecret string
	Sponsor        *sponsor.Handler
	Log            *zap.Logger
}

func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := readStripeBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.EndpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.Log.Warn("stripe signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		// Asynchronous payment methods complete the session before the
		// payment settles; verification re-checks the status either way.
		payment, err := sponsor.VerifyPayment(h.Sponsor.Gateway, session.ID)
		if err != nil {
			h.Log.Warn("webhook session not processable",
				zap.String("session_id", session.ID),
				zap.Error(err),
			)
			// Acknowledge so Stripe does not retry an unpaid session.
			c.JSON(http.StatusOK, gin.H{"status": "skipped"})
			return
		}
		h.Sponsor.Dispatcher.Dispatch(c.Request.Context(), payment)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return

	default:
		// Acknowledge unknown events to avoid retries
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
