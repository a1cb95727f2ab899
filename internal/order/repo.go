package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/mercado-granja/internal/database"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	// Create inserts o and its items atomically, filling generated ids.
	Create(ctx context.Context, o *Order, items []Detail) error
	AddDetail(ctx context.Context, d *Detail) error
	GetByID(ctx context.Context, id int64) (*Order, []Detail, error)
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
}

type PGRepo struct{ db database.DB }

func NewPGRepo(db database.DB) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Detail) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, total_price, address_id, created_at)
		VALUES ($1,$2,$3,NOW())
		RETURNING order_id, created_at
	`, o.UserID, o.TotalPrice, o.AddressID).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range items {
		items[i].OrderID = o.ID
		if err := insertDetail(ctx, tx, &items[i]); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	o.Items = items
	return nil
}

func (r *PGRepo) AddDetail(ctx context.Context, d *Detail) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return insertDetail(ctx, r.db, d)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertDetail(ctx context.Context, q queryRower, d *Detail) error {
	if err := q.QueryRow(ctx, `
		INSERT INTO order_details (order_id, product_id, quantity, price, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		RETURNING order_detail_id, created_at
	`, d.OrderID, d.ProductID, d.Quantity, d.Price).Scan(&d.ID, &d.CreatedAt); err != nil {
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, []Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := r.db.QueryRow(ctx, `
		SELECT order_id, user_id, total_price::text, address_id, created_at
		FROM orders WHERE order_id=$1
	`, id).Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.AddressID, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_detail_id, order_id, product_id, quantity, price::text, created_at
		FROM order_details WHERE order_id=$1
		ORDER BY order_detail_id
	`, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := []Detail{}
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.Quantity, &d.Price, &d.CreatedAt); err != nil {
			return nil, nil, err
		}
		items = append(items, d)
	}
	return &o, items, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT order_id, user_id, total_price::text, address_id, created_at
		FROM orders WHERE user_id=$1
		ORDER BY created_at DESC, order_id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.AddressID, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
