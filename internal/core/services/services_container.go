package services

import (
	portsrepo "github.com/SscSPs/arp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		FECAnalysis: NewFECAnalysisService(repos.FECAnalysisRepo, repos.PayrollRepo),
		Payroll:     NewPayrollService(repos.PayrollRepo),
	}
}
