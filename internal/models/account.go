package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents a financial account within a company's ledger.
type Account struct {
	AccountID   string      `db:"account_id"`
	CompanyID   string      `db:"company_id"`
	CategoryID  *string     `db:"category_id"` // Nullable
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	Status      string      `db:"status"`
	AuditFields
}

// AccountCategory groups accounts for presentation.
type AccountCategory struct {
	CategoryID  string `db:"category_id"`
	CompanyID   string `db:"company_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
