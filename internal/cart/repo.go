package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeMC777/mercado-granja/internal/database"
)

type Repository interface {
	Add(ctx context.Context, it *Item) error
	ListByUser(ctx context.Context, userID int64) ([]Line, error)
	DeleteByID(ctx context.Context, cartID int64) (bool, error)
	DeleteByUserProduct(ctx context.Context, userID, productID int64) (int64, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

type PGRepo struct{ db database.DB }

func NewPGRepo(db database.DB) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Add(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO cart (user_id, product_id, quantity, created_at)
		VALUES ($1,$2,$3,NOW())
		RETURNING cart_id
	`, it.UserID, it.ProductID, it.Quantity).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT c.cart_id, p.product_id, p.product_name, p.price::text, c.quantity
		FROM cart c
		JOIN products p ON c.product_id = p.product_id
		WHERE c.user_id = $1
		ORDER BY c.cart_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.CartID, &l.ProductID, &l.ProductName, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PGRepo) DeleteByID(ctx context.Context, cartID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM cart WHERE cart_id=$1`, cartID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) DeleteByUserProduct(ctx context.Context, userID, productID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *PGRepo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
