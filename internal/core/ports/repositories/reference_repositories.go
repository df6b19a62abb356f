package repositories

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// ReferenceDataReader loads the read-only reference datasets behind the dashboards.
// Every failure to produce rows (missing source, missing column, bad cell, no rows)
// is reported as apperrors.ErrDataUnavailable.
type ReferenceDataReader interface {
	LoadAgricultural(ctx context.Context) ([]domain.AgriculturalRecord, error)
	LoadCompany(ctx context.Context) ([]domain.CompanyRecord, error)
	LoadIndividual(ctx context.Context) ([]domain.IndividualRecord, error)
}
