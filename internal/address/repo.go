package address

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/mercado-granja/internal/database"
)

var (
	ErrNotFound = errors.New("address not found")
)

type Repository interface {
	Create(ctx context.Context, a *Address) error
	// Primary returns the user's default address, else the earliest one created.
	Primary(ctx context.Context, userID int64) (*Address, error)
	GetForUser(ctx context.Context, addressID, userID int64) (*Address, error)
	FindByFields(ctx context.Context, userID int64, f Fields) (*Address, error)
}

type PGRepo struct{ db database.DB }

func NewPGRepo(db database.DB) *PGRepo { return &PGRepo{db: db} }

const selectAddress = `
	SELECT address_id, user_id, address_line, city, postal_code, country, is_default, created_at
	FROM addresses`

// Create inserts a. A new default address clears the user's previous default in the same transaction.
func (r *PGRepo) Create(ctx context.Context, a *Address) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if a.IsDefault {
		if _, err := tx.Exec(ctx, `
			UPDATE addresses SET is_default = FALSE
			WHERE user_id = $1 AND is_default
		`, a.UserID); err != nil {
			return fmt.Errorf("clear default address: %w", err)
		}
	}

	if err := tx.QueryRow(ctx, `
		INSERT INTO addresses (user_id, address_line, city, postal_code, country, is_default, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
		RETURNING address_id, created_at
	`, a.UserID, a.AddressLine, a.City, a.PostalCode, a.Country, a.IsDefault).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) Primary(ctx context.Context, userID int64) (*Address, error) {
	return r.one(ctx, selectAddress+`
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at ASC, address_id ASC
		LIMIT 1
	`, userID)
}

func (r *PGRepo) GetForUser(ctx context.Context, addressID, userID int64) (*Address, error) {
	return r.one(ctx, selectAddress+`
		WHERE address_id = $1 AND user_id = $2
	`, addressID, userID)
}

func (r *PGRepo) FindByFields(ctx context.Context, userID int64, f Fields) (*Address, error) {
	return r.one(ctx, selectAddress+`
		WHERE user_id = $1 AND address_line = $2 AND city = $3 AND postal_code = $4 AND country = $5
		ORDER BY created_at ASC, address_id ASC
		LIMIT 1
	`, userID, f.AddressLine, f.City, f.PostalCode, f.Country)
}

func (r *PGRepo) one(ctx context.Context, sql string, args ...any) (*Address, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var a Address
	err := r.db.QueryRow(ctx, sql, args...).
		Scan(&a.ID, &a.UserID, &a.AddressLine, &a.City, &a.PostalCode, &a.Country, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select address: %w", err)
	}
	return &a, nil
}
