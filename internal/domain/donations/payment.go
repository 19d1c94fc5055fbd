package donations

import "errors"

var (
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// BillingAddress is the donor's billing address as captured by the
// payment processor. Line2 is frequently empty.
type BillingAddress struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// CompletedPayment holds everything extracted from a paid checkout
// session. Built only after the processor reports the session as paid,
// never mutated afterward, and not persisted anywhere: the processor
// remains the durable record.
type CompletedPayment struct {
	SessionID      string
	PaymentStatus  string
	DonorEmail     string
	DonorPhone     string
	BillingAddress BillingAddress
	FullName       string
	PublicSponsor  bool
	AmountCents    int64
	Tier           Tier
}

// NotificationOutcome is the per-recipient result of one email dispatch.
type NotificationOutcome string

const (
	OutcomeSent   NotificationOutcome = "sent"
	OutcomeFailed NotificationOutcome = "failed"
)

// DispatchResult carries the independent outcomes of the two post-payment
// notifications. One failing says nothing about the other.
type DispatchResult struct {
	Receipt NotificationOutcome
	Admin   NotificationOutcome
}
