package checkout

import "context"

// GatewayOrder is the gateway's view of a created order.
type GatewayOrder struct {
	ID       string
	Amount   int64 // paise
	Currency string
}

// Gateway abstracts the payment provider so the orchestrator never touches
// the provider's global widget machinery directly.
type Gateway interface {

	// Create an order for the given amount; the returned id seeds the
	// checkout widget.
	CreateOrder(ctx context.Context, amountPaise int64, receipt string) (*GatewayOrder, error)

	// Check the signature the widget's success callback delivered.
	VerifySignature(orderID, paymentID, signature string) bool

	// Public key id the widget is initialized with.
	Key() string
}
