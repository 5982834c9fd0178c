package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:   companyRepo,
		AccountRepo:   accountRepo,
		CategoryRepo:  categoryRepo,
		JournalRepo:   journalRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
		AuditRepo:     auditRepo,
	}
}
