package services

import (
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Company = NewCompanyService(repos.CompanyRepo, repos.AuditRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CategoryRepo, repos.CompanyRepo, repos.AuditRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.AuditRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.CompanyRepo, repos.AuditRepo)
	container.User = NewUserService(repos.UserRepo, cfg, repos.AuditRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)
	container.Audit = NewAuditService(repos.AuditRepo)

	return container
}
