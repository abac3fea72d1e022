package company

import "context"

// Repository defines the read contract for the company record store.
type Repository interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	ListOfficers(ctx context.Context) ([]Officer, error)
}
