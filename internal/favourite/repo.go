package favourite

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeMC777/mercado-granja/internal/database"
)

type Repository interface {
	Add(ctx context.Context, f *Favourite) error
	ListByUser(ctx context.Context, userID int64) ([]Line, error)
	Remove(ctx context.Context, userID, productID int64) (int64, error)
}

type PGRepo struct{ db database.DB }

func NewPGRepo(db database.DB) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Add(ctx context.Context, f *Favourite) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO favourites (user_id, product_id, created_at)
		VALUES ($1,$2,NOW())
		RETURNING favourite_id
	`, f.UserID, f.ProductID).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert favourite: %w", err)
	}
	return nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID int64) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT f.favourite_id, p.product_id, p.product_name, p.price::text, COALESCE(p.image_url,'')
		FROM favourites f
		JOIN products p ON f.product_id = p.product_id
		WHERE f.user_id = $1
		ORDER BY f.favourite_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.FavouriteID, &l.ProductID, &l.ProductName, &l.Price, &l.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PGRepo) Remove(ctx context.Context, userID, productID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM favourites WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
