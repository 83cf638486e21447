package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/receipts/repository/receipts"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Receipts receipts.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Receipts: receipts.New(db),
	}
}
