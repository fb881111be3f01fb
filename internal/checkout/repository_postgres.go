package checkout

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Persist a new order record
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	query := `
		INSERT INTO orders (
			receipt,
			gateway_order_id,
			amount,
			currency,
			status
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		order.Receipt,
		order.GatewayOrderID,
		order.Amount,
		order.Currency,
		order.Status,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

// --------------------------------------------------
// Mark paid after signature verification
// --------------------------------------------------
func (r *PostgresRepository) MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) error {
	query := `
		UPDATE orders
		SET status = $1,
		    payment_id = $2,
		    updated_at = CURRENT_TIMESTAMP
		WHERE gateway_order_id = $3
	`

	tag, err := r.db.Exec(ctx, query, OrderStatusPaid, paymentID, gatewayOrderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// --------------------------------------------------
// Mark failed after rejected verification
// --------------------------------------------------
func (r *PostgresRepository) MarkFailed(ctx context.Context, gatewayOrderID string) error {
	query := `
		UPDATE orders
		SET status = $1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE gateway_order_id = $2
	`

	tag, err := r.db.Exec(ctx, query, OrderStatusFailed, gatewayOrderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// --------------------------------------------------
// Fetch by gateway order id
// --------------------------------------------------
func (r *PostgresRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*Order, error) {
	query := `
		SELECT
			id,
			receipt,
			gateway_order_id,
			amount,
			currency,
			status,
			COALESCE(payment_id, ''),
			created_at,
			updated_at
		FROM orders
		WHERE gateway_order_id = $1
	`

	var order Order
	err := r.db.QueryRow(ctx, query, gatewayOrderID).Scan(
		&order.ID,
		&order.Receipt,
		&order.GatewayOrderID,
		&order.Amount,
		&order.Currency,
		&order.Status,
		&order.PaymentID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("order not found")
		}
		return nil, err
	}

	return &order, nil
}
