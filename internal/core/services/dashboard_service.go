package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/analytics"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
)

// Dataset names used in notice keys and logs.
const (
	datasetAgricultural = "agricultural"
	datasetCompany      = "company"
	datasetIndividual   = "individual"
)

// dashboardService implements portssvc.DashboardSvc
type dashboardService struct {
	BaseService
	txnRepo   portsrepo.TransactionReader
	reference portsrepo.ReferenceDataReader
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(txnRepo portsrepo.TransactionReader, reference portsrepo.ReferenceDataReader) portssvc.DashboardSvc {
	return &dashboardService{
		txnRepo:   txnRepo,
		reference: reference,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// Dashboard summarizes the viewer's transactions and runs the metrics and
// recommendation pipeline of the viewer's account type. A failed transaction read
// or an unusable reference dataset degrades the result to defaults plus a notice.
// The only errors returned are an invalid account type and a cancelled context.
func (s *dashboardService) Dashboard(ctx context.Context, viewer domain.ViewerContext) (*domain.Dashboard, error) {
	if !viewer.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, viewer.AccountType)
	}
	now := viewer.Now
	if now.IsZero() {
		now = time.Now()
	}

	d := &domain.Dashboard{
		AccountType: viewer.AccountType,
		Notices:     []string{},
	}

	txns, err := s.txnRepo.FindTransactionsByUser(ctx, viewer.UserID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.LogError(ctx, err, "Failed to load transactions for dashboard", slog.String("user_id", viewer.UserID))
		d.Notices = append(d.Notices, domain.NoticeTransactionsUnavailable)
		txns = nil
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	d.Transactions = txns
	d.Summary = analytics.SummarizeTransactions(txns, now)

	switch viewer.AccountType {
	case domain.AccountFarmer:
		m, err := s.agricultural(ctx)
		if err != nil {
			s.absorb(ctx, d, datasetAgricultural, err)
			m = analytics.DefaultAgriculturalMetrics()
		}
		d.Agricultural = &m
		d.Recommendations = analytics.RecommendFarming(m)

	case domain.AccountCompany:
		m, err := s.company(ctx)
		if err != nil {
			s.absorb(ctx, d, datasetCompany, err)
			m = analytics.DefaultCompanyMetrics()
		}
		d.Company = &m
		d.Recommendations = analytics.RecommendCompany(m)
		// The company view reports totals only.
		d.Summary.CategoryExpenses = nil
		d.Summary.ExpenseTrends = nil

	case domain.AccountIndividual:
		m, err := s.individual(ctx)
		if err != nil {
			s.absorb(ctx, d, datasetIndividual, err)
			m = analytics.DefaultIndividualMetrics(d.Summary)
		}
		d.Individual = &m
		d.Recommendations = analytics.RecommendIndividual(m)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Dashboard assembled",
		slog.String("account_type", string(viewer.AccountType)),
		slog.Int("transactions", len(txns)),
		slog.Int("recommendations", len(d.Recommendations)),
		slog.Int("notices", len(d.Notices)))
	return d, nil
}

func (s *dashboardService) agricultural(ctx context.Context) (domain.AgriculturalMetrics, error) {
	rows, err := s.reference.LoadAgricultural(ctx)
	if err != nil {
		return domain.AgriculturalMetrics{}, err
	}
	return analytics.AggregateAgricultural(rows)
}

func (s *dashboardService) company(ctx context.Context) (domain.CompanyMetrics, error) {
	rows, err := s.reference.LoadCompany(ctx)
	if err != nil {
		return domain.CompanyMetrics{}, err
	}
	return analytics.AggregateCompany(rows)
}

func (s *dashboardService) individual(ctx context.Context) (domain.IndividualMetrics, error) {
	rows, err := s.reference.LoadIndividual(ctx)
	if err != nil {
		return domain.IndividualMetrics{}, err
	}
	return analytics.AggregateIndividual(rows)
}

// absorb turns a dataset failure into a notice.
func (s *dashboardService) absorb(ctx context.Context, d *domain.Dashboard, dataset string, err error) {
	if errors.Is(err, apperrors.ErrDataUnavailable) {
		s.LogWarn(ctx, "Reference dataset unavailable, using defaults", slog.String("dataset", dataset), slog.String("error", err.Error()))
	} else {
		s.LogError(ctx, err, "Failed to load reference dataset, using defaults", slog.String("dataset", dataset))
	}
	d.Notices = append(d.Notices, domain.DataUnavailableNotice(dataset))
}
