package domain

import "time"

// JournalEntry is a transaction header owning an ordered set of lines.
//
// Core invariant: for every non-deleted entry, the sum of line debit amounts
// equals the sum of line credit amounts and both sums are strictly positive.
// The invariant holds after every successful mutation; a transient unbalanced
// state is never durably observable.
type JournalEntry struct {
	EntryID     string     `json:"entryID"`
	CompanyID   string     `json:"companyID"`
	EntryDate   time.Time  `json:"date"`
	Description string     `json:"description"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"` // soft-delete tombstone
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"`
}

// IsDeleted reports whether the entry carries a soft-delete tombstone.
func (e JournalEntry) IsDeleted() bool {
	return e.DeletedAt != nil
}

// JournalLine is one posting within an entry: exactly one of DebitAmount or
// CreditAmount is set, to a positive integer amount in minor units.
type JournalLine struct {
	LineID       string `json:"lineID"`
	EntryID      string `json:"entryID"`
	AccountID    string `json:"accountID"`
	DebitAmount  *int64 `json:"debitAmount,omitempty"`
	CreditAmount *int64 `json:"creditAmount,omitempty"`
	Description  string `json:"description,omitempty"`
	AuditFields

	// Denormalized account fields populated on reads for API convenience.
	AccountName string      `json:"accountName,omitempty"`
	AccountType AccountType `json:"accountType,omitempty"`
}

// Debit returns the debit amount, zero when the line is a credit.
func (l JournalLine) Debit() int64 {
	if l.DebitAmount != nil {
		return *l.DebitAmount
	}
	return 0
}

// Credit returns the credit amount, zero when the line is a debit.
func (l JournalLine) Credit() int64 {
	if l.CreditAmount != nil {
		return *l.CreditAmount
	}
	return 0
}
