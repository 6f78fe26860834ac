package services

import (
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies.
// The reporting service reads through the data service so reports and the
// dashboard always agree on the snapshot.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	dataSvc := NewDataService(repos)
	reportingSvc := NewReportingService(dataSvc)

	return &portssvc.ServiceContainer{
		Data:      dataSvc,
		Reporting: reportingSvc,
	}
}
