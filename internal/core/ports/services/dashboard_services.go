package services

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// DashboardSvc assembles the dashboard for the requesting viewer.
type DashboardSvc interface {
	// Dashboard never fails because of missing data; degraded sources are
	// reported as notices on the result.
	Dashboard(ctx context.Context, viewer domain.ViewerContext) (*domain.Dashboard, error)
}
