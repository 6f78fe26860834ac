package services

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
)

// ReportingSvcFacade aggregates the active workplace's records over a period.
type ReportingSvcFacade interface {
	// GenerateReport resolves the requested period and returns earned/paid/
	// pending totals, attendance-status counts and the top-5 performers ranked
	// by earnings in the period.
	GenerateReport(ctx context.Context, req dto.ReportRequest) (*domain.ReportData, error)
}
