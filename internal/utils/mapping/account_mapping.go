package mapping

import (
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		CompanyID:   d.CompanyID,
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Status:      domain.CommonStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelAccountCategory converts a domain AccountCategory to a model AccountCategory
func ToModelAccountCategory(d domain.AccountCategory) models.AccountCategory {
	return models.AccountCategory{
		CategoryID:  d.CategoryID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountCategory converts a model AccountCategory to a domain AccountCategory
func ToDomainAccountCategory(m models.AccountCategory) domain.AccountCategory {
	return domain.AccountCategory{
		CategoryID:  m.CategoryID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
