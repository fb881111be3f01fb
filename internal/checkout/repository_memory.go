package checkout

import (
	"context"
	"errors"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	orders map[string]*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID: 1,
		orders: make(map[string]*Order),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	stored := *order
	r.orders[order.GatewayOrderID] = &stored
	return nil
}

func (r *InMemoryRepository) MarkPaid(_ context.Context, gatewayOrderID, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[gatewayOrderID]
	if !ok {
		return errors.New("order not found")
	}

	order.Status = OrderStatusPaid
	order.PaymentID = paymentID
	order.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) MarkFailed(_ context.Context, gatewayOrderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[gatewayOrderID]
	if !ok {
		return errors.New("order not found")
	}

	order.Status = OrderStatusFailed
	order.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) GetByGatewayOrderID(_ context.Context, gatewayOrderID string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[gatewayOrderID]
	if !ok {
		return nil, errors.New("order not found")
	}

	copied := *order
	return &copied, nil
}
