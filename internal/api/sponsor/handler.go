package sponsor

import (
	"errors"
	"net/http"
	"strconv"

	"donation-app/internal/domain/donations"
	stripeinfra "donation-app/internal/infra/stripe"
	"donation-app/internal/notify"

	"github.com/gin-gonic/gin"
)

// Handler carries the pipeline's collaborators into the HTTP layer.
type Handler struct {
	Gateway    stripeinfra.Processor
	Dispatcher *notify.Dispatcher
	AppURL     string
}

// CreatePayment builds a checkout session for a donation intent and
// returns the hosted-checkout URL the browser should redirect to.
// Build failures surface to the donor here, before any charge exists.
func (h *Handler) CreatePayment(c *gin.Context) {
	var body CreatePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	intent, err := intentFromRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := CreateCheckoutSession(h.Gateway, intent, h.AppURL)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, donations.ErrInvalidDonationIntent) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CreatePaymentResponse{URL: session.URL, SessionID: session.ID})
}

// Quote returns the fee breakdown for an amount. The same ComputeCharge
// call later prices the actual line item, so the displayed total can
// never drift from the charged one.
func (h *Handler) Quote(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount_cents"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid amount_cents"})
		return
	}

	breakdown, err := donations.ComputeCharge(amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// ProcessPaymentSuccess is the success-redirect landing trigger: verify
// the session is paid, then fan out both notifications. A donor whose
// payment succeeded always gets a success response, even when an email
// failed to deliver.
func (h *Handler) ProcessPaymentSuccess(c *gin.Context) {
	var body ProcessSuccessRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid session_id"})
		return
	}

	payment, err := VerifyPayment(h.Gateway, body.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, donations.ErrPaymentNotCompleted):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, donations.ErrUpstreamUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	result := h.Dispatcher.Dispatch(c.Request.Context(), payment)

	c.JSON(http.StatusOK, ProcessSuccessResponse{
		Success:       true,
		Message:       "Payment processed and receipt sent",
		ReceiptStatus: string(result.Receipt),
		AdminStatus:   string(result.Admin),
	})
}

// intentFromRequest maps the wire request onto a typed intent: a custom
// amount wins when present, otherwise the named tier is looked up at its
// published minimum.
func intentFromRequest(body CreatePaymentRequest) (donations.Intent, error) {
	if body.CustomAmountCents > 0 {
		return donations.NewCustomIntent(body.CustomAmountCents)
	}
	if body.Tier != "" {
		tier, ok := donations.ParseTier(body.Tier)
		if !ok || tier == donations.TierCustom {
			return donations.Intent{}, donations.ErrInvalidDonationIntent
		}
		return donations.NewTierIntent(tier)
	}
	return donations.Intent{}, donations.ErrInvalidDonationIntent
}
