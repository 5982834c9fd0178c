package models

import "time"

// JournalEntry represents a single, balanced financial event composed of multiple lines.
type JournalEntry struct {
	EntryID     string     `db:"entry_id"`
	CompanyID   string     `db:"company_id"`
	EntryDate   time.Time  `db:"entry_date"`
	Description string     `db:"description"`
	DeletedAt   *time.Time `db:"deleted_at"` // Nullable, set on soft delete
	AuditFields
}

// JournalLine is one debit or credit leg of a journal entry. Amounts are
// stored in minor units; exactly one of DebitAmount/CreditAmount is set.
type JournalLine struct {
	LineID       string `db:"line_id"`
	EntryID      string `db:"entry_id"`
	AccountID    string `db:"account_id"`
	DebitAmount  *int64 `db:"debit_amount"`
	CreditAmount *int64 `db:"credit_amount"`
	Description  string `db:"description"`
	AuditFields
	// Denormalized read fields, populated on joined reads only.
	AccountName string `db:"account_name"`
	AccountType string `db:"account_type"`
}
