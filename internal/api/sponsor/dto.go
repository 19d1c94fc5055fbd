package sponsor

// CreatePaymentRequest is the donation intent as submitted by the UI:
// either a tier name or a custom amount in cents, never both.
type CreatePaymentRequest struct {
	Tier              string `json:"tier"`
	CustomAmountCents int64  `json:"custom_amount_cents"`
}

type CreatePaymentResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

type ProcessSuccessRequest struct {
	SessionID string `json:"session_id"`
}

type ProcessSuccessResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ReceiptStatus string `json:"receipt_status"`
	AdminStatus   string `json:"admin_status"`
}
