package checkout

import (
	"time"

	"github.com/shyam-3045/food-dispencing-system/internal/session"
)

// State is the per-session position in the checkout flow.
type State string

const (
	StateBrowsing              State = "BROWSING"
	StateReviewingPayment      State = "REVIEWING_PAYMENT"
	StateAwaitingGatewayResult State = "AWAITING_GATEWAY_RESULT"
	StateVerifying             State = "VERIFYING"
	StateCompleted             State = "COMPLETED"
	StateFailed                State = "FAILED"
)

// Order statuses as persisted.
const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

// Order is the server-side record of one checkout attempt.
type Order struct {
	ID             int       `json:"id"`
	Receipt        string    `json:"receipt"`
	GatewayOrderID string    `json:"gateway_order_id"`
	Amount         int64     `json:"amount"` // paise
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	PaymentID      string    `json:"payment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Summary is what the payment confirmation view shows.
type Summary struct {
	Lines []session.CartLine `json:"lines"`
	Total int                `json:"total"` // rupees
}

// WidgetConfig configures the gateway's checkout widget on the front-end.
type WidgetConfig struct {
	Key      string `json:"key"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
}
