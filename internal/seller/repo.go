package seller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/mercado-granja/internal/database"
	"github.com/MikeMC777/mercado-granja/internal/sqlerr"
)

var (
	ErrNotFound     = errors.New("seller not found")
	ErrAlreadyExist = errors.New("seller already exists")
)

type Repository interface {
	Create(ctx context.Context, s *Seller) error
	GetByEmail(ctx context.Context, email string) (*Seller, error)
}

type PGRepo struct{ db database.DB }

func NewPGRepo(db database.DB) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, s *Seller) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO sellers (email, password_hash, store_name, contact_number, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		RETURNING seller_id, created_at
	`, s.Email, s.PasswordHash, s.StoreName, s.ContactNumber).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return ErrAlreadyExist
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Seller, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Seller
	err := r.db.QueryRow(ctx, `
		SELECT seller_id, email, password_hash, store_name, contact_number, created_at
		FROM sellers WHERE email=$1
	`, email).Scan(&s.ID, &s.Email, &s.PasswordHash, &s.StoreName, &s.ContactNumber, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select seller: %w", err)
	}
	return &s, nil
}
