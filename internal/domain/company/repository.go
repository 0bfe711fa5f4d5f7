package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)

	// ListAll retrieves every company; the nightly sweeps iterate this
	ListAll(ctx context.Context) ([]Company, error)
}
