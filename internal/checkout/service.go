package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shyam-3045/food-dispencing-system/internal/session"
	"github.com/shyam-3045/food-dispencing-system/pkg/metrics"
)

var (
	ErrCartEmpty           = errors.New("cart is empty")
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrVerificationFailed  = errors.New("payment verification failed")
	ErrCheckoutInProgress  = errors.New("checkout already in progress")
	ErrNotAwaitingGateway  = errors.New("no payment awaiting verification")
	ErrOrderMismatch       = errors.New("unknown gateway order for this session")
	ErrNothingToCancel     = errors.New("nothing to cancel")
)

// callTimeout bounds order-creation and verification round trips.
const callTimeout = 15 * time.Second

// Dispenser triggers the physical hardware for a paid cart. Implemented by
// the actuation package; which implementation is wired depends on the
// deployment's actuation mode.
type Dispenser interface {
	Dispense(ctx context.Context, lines []session.CartLine) error
}

// flow is one session's ride through the checkout state machine.
type flow struct {
	mu             sync.Mutex
	state          State
	gatewayOrderID string
}

// Service sequences order creation, gateway interaction, and verification.
type Service struct {
	mu    sync.Mutex
	flows map[string]*flow

	carts     *session.Service
	gateway   Gateway
	orders    Repository
	dispenser Dispenser
}

func NewService(carts *session.Service, gateway Gateway, orders Repository, dispenser Dispenser) *Service {
	return &Service{
		flows:     make(map[string]*flow),
		carts:     carts,
		gateway:   gateway,
		orders:    orders,
		dispenser: dispenser,
	}
}

func (s *Service) flowFor(sessionID string) *flow {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		f = &flow{state: StateBrowsing}
		s.flows[sessionID] = f
	}
	return f
}

// State reports the session's current checkout state.
func (s *Service) State(sessionID string) State {
	f := s.flowFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// --------------------------------------------------
// Browsing -> ReviewingPayment
// --------------------------------------------------
func (s *Service) Review(sessionID string) (*Summary, error) {
	f := s.flowFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateBrowsing, StateReviewingPayment, StateFailed, StateCompleted:
		// a finished or failed checkout may start over
	default:
		return nil, ErrCheckoutInProgress
	}

	lines, total, err := s.carts.Cart(sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	f.state = StateReviewingPayment
	f.gatewayOrderID = ""

	return &Summary{Lines: lines, Total: total}, nil
}

// --------------------------------------------------
// ReviewingPayment -> AwaitingGatewayResult
// --------------------------------------------------
func (s *Service) Confirm(ctx context.Context, sessionID string) (*WidgetConfig, error) {
	f := s.flowFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReviewingPayment {
		return nil, ErrCheckoutInProgress
	}

	_, total, err := s.carts.Cart(sessionID)
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		return nil, ErrCartEmpty
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	receipt := uuid.New().String()
	amountPaise := int64(total) * 100

	gwOrder, err := s.gateway.CreateOrder(ctx, amountPaise, receipt)
	if err != nil {
		// Cart stays intact so the user can retry from the start.
		f.state = StateFailed
		slog.Error("gateway order creation failed", "session", sessionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	order := &Order{
		Receipt:        receipt,
		GatewayOrderID: gwOrder.ID,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		Status:         OrderStatusCreated,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		f.state = StateFailed
		slog.Error("order record not persisted", "gateway_order", gwOrder.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	metrics.OrdersCreated.Inc()

	f.state = StateAwaitingGatewayResult
	f.gatewayOrderID = gwOrder.ID

	slog.Info("gateway order created",
		"session", sessionID,
		"gateway_order", gwOrder.ID,
		"amount", gwOrder.Amount,
	)

	return &WidgetConfig{
		Key:      s.gateway.Key(),
		OrderID:  gwOrder.ID,
		Amount:   gwOrder.Amount,
		Currency: gwOrder.Currency,
	}, nil
}

// --------------------------------------------------
// AwaitingGatewayResult -> Verifying -> Completed | Failed
// --------------------------------------------------
func (s *Service) Verify(ctx context.Context, sessionID, orderID, paymentID, signature string) (*Order, error) {
	f := s.flowFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateAwaitingGatewayResult {
		return nil, ErrNotAwaitingGateway
	}
	if orderID != f.gatewayOrderID {
		return nil, ErrOrderMismatch
	}

	f.state = StateVerifying

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		f.state = StateFailed
		metrics.PaymentsVerified.WithLabelValues("failed").Inc()

		if err := s.orders.MarkFailed(ctx, orderID); err != nil {
			slog.Error("order record not marked failed", "gateway_order", orderID, "error", err)
		}

		slog.Warn("payment verification failed", "session", sessionID, "gateway_order", orderID)
		return nil, ErrVerificationFailed
	}

	if err := s.orders.MarkPaid(ctx, orderID, paymentID); err != nil {
		// The signature checked out; the payment stands even if the
		// record update lagged.
		slog.Error("order record not marked paid", "gateway_order", orderID, "error", err)
	}

	metrics.PaymentsVerified.WithLabelValues("success").Inc()

	lines, _, err := s.carts.Cart(sessionID)
	if err != nil {
		slog.Error("cart snapshot failed after payment", "session", sessionID, "error", err)
	}

	if err := s.carts.ClearCart(sessionID); err != nil {
		slog.Error("cart not cleared after payment", "session", sessionID, "error", err)
	}

	f.state = StateCompleted
	f.gatewayOrderID = ""

	slog.Info("payment verified", "session", sessionID, "gateway_order", orderID, "payment", paymentID)

	// Dispensing is best-effort and decoupled from the payment: it runs in
	// the background and a hardware failure never unwinds a paid order.
	go func(lines []session.CartLine) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.dispenser.Dispense(ctx, lines); err != nil {
			slog.Warn("dispensing incomplete", "gateway_order", orderID, "error", err)
		}
	}(lines)

	order, err := s.orders.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		return &Order{GatewayOrderID: orderID, Status: OrderStatusPaid, PaymentID: paymentID}, nil
	}
	return order, nil
}

// --------------------------------------------------
// Cancel / widget dismissed -> Browsing (silent)
// --------------------------------------------------
func (s *Service) Cancel(sessionID string) error {
	f := s.flowFor(sessionID)
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateReviewingPayment, StateAwaitingGatewayResult:
		f.state = StateBrowsing
		f.gatewayOrderID = ""
		return nil
	case StateVerifying:
		return ErrCheckoutInProgress
	default:
		return ErrNothingToCancel
	}
}
