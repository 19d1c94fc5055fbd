package stripe

import (
	stripeapi "github.com/stripe/stripe-go/v82"
	checkoutsession "github.com/stripe/stripe-go/v82/checkout/session"
)

// Processor is the payment-processor collaborator: create a hosted
// checkout session, attach metadata to it after creation, and read a
// completed session back with expansions.
type Processor interface {
	CreateSession(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error)
	UpdateSessionMetadata(id string, metadata map[string]string) (*stripeapi.CheckoutSession, error)
	GetExpandedSession(id string) (*stripeapi.CheckoutSession, error)
}

// Gateway implements Processor against the Stripe API using the
// package-level key.
type Gateway struct{}

func NewGateway(secretKey string) Gateway {
	stripeapi.Key = secretKey
	return Gateway{}
}

func (Gateway) CreateSession(params *stripeapi.CheckoutSessionParams) (*stripeapi.CheckoutSession, error) {
	return checkoutsession.New(params)
}

func (Gateway) UpdateSessionMetadata(id string, metadata map[string]string) (*stripeapi.CheckoutSession, error) {
	params := &stripeapi.CheckoutSessionParams{}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	return checkoutsession.Update(id, params)
}

// GetExpandedSession fetches a session with customer and line items
// expanded, which is everything verification needs in one round trip.
func (Gateway) GetExpandedSession(id string) (*stripeapi.CheckoutSession, error) {
	return checkoutsession.Get(id, &stripeapi.CheckoutSessionParams{
		Params: stripeapi.Params{
			Expand: []*string{
				stripeapi.String("customer"),
				stripeapi.String("line_items"),
			},
		},
	})
}
