package pgsql

import (
	portsrepo "github.com/SscSPs/arp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FECAnalysisRepo: newPgxFECAnalysisRepository(dbPool),
		PayrollRepo:     newPgxPayrollRepository(dbPool),
	}
}
