package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"restaurant-analytics/internal/domain"
)

type PostgresSource struct {
	DB *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

// Load reads both tables inside one read-only transaction so the two
// collections describe the same moment.
func (r *PostgresSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, &domain.LoadError{Source: "postgres", Err: err}
	}
	defer tx.Rollback()

	restaurants, err := r.listRestaurants(ctx, tx)
	if err != nil {
		return nil, &domain.LoadError{Source: "postgres", Err: err}
	}
	orders, err := r.listOrders(ctx, tx)
	if err != nil {
		return nil, &domain.LoadError{Source: "postgres", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return nil, &domain.LoadError{Source: "postgres", Err: err}
	}

	return &domain.Snapshot{Restaurants: restaurants, Orders: orders}, nil
}

func (r *PostgresSource) listRestaurants(ctx context.Context, tx *sql.Tx) ([]domain.Restaurant, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, COALESCE(location, ''), COALESCE(cuisine, '')
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.Cuisine); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresSource) listOrders(ctx context.Context, tx *sql.Tx) ([]domain.Order, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT restaurant_id, order_time, order_amount
		FROM orders
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			order     domain.Order
			orderTime time.Time
		)
		if err := rows.Scan(&order.RestaurantID, &orderTime, &order.OrderAmount); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.OrderTime = domain.Timestamp{Time: orderTime}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
