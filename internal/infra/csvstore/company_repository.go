package csvstore

import (
	"context"

	"github.com/socx/event-announcer/internal/domain/company"
)

// CompanyRepository reads companies and company officers from CSV files.
// It implements company.Repository.
type CompanyRepository struct {
	companiesPath string
	officersPath  string
}

func NewCompanyRepository(companiesPath, officersPath string) *CompanyRepository {
	return &CompanyRepository{
		companiesPath: companiesPath,
		officersPath:  officersPath,
	}
}

// ListCompanies reads the full company record set.
func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]company.Company, error) {
	return readAll[company.Company](ctx, r.companiesPath)
}

// ListOfficers reads the full company officer record set.
func (r *CompanyRepository) ListOfficers(ctx context.Context) ([]company.Officer, error) {
	return readAll[company.Officer](ctx, r.officersPath)
}
