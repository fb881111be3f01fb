package checkout

import "context"

// Repository defines all database operations for order records
type Repository interface {

	// Persist a freshly created gateway order (status CREATED)
	Create(ctx context.Context, order *Order) error

	// Mark an order paid once its signature verified
	MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) error

	// Mark an order failed after a rejected verification
	MarkFailed(ctx context.Context, gatewayOrderID string) error

	// Fetch an order by its gateway id
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Order, error)
}
