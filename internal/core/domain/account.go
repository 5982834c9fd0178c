package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five fixed account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// DebitNatured reports whether the account type normally carries a debit
// balance (ASSET, EXPENSE); the other three are credit-natured.
func (t AccountType) DebitNatured() bool {
	return t == Asset || t == Expense
}

// Account is one ledger account in a company's chart of accounts.
// Names are unique per company; an INACTIVE account refuses new journal lines.
type Account struct {
	AccountID   string       `json:"accountID"`
	CompanyID   string       `json:"companyID"`
	CategoryID  *string      `json:"categoryID,omitempty"` // nullable FK -> account_categories
	Name        string       `json:"name"`
	AccountType AccountType  `json:"accountType"`
	Status      CommonStatus `json:"status"`
	AuditFields
}

// AccountCategory is a company-scoped grouping for accounts. Deleting a
// category detaches its accounts rather than deleting them.
type AccountCategory struct {
	CategoryID  string `json:"categoryID"`
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
