package dto

import (
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CreateJournalLineRequest defines one debit or credit leg of a new entry.
// Amounts are in currency units; exactly one of debitAmount/creditAmount
// must be a positive number.
type CreateJournalLineRequest struct {
	AccountID    string   `json:"accountID" binding:"required"`
	DebitAmount  *float64 `json:"debitAmount"`
	CreditAmount *float64 `json:"creditAmount"`
	Description  string   `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to create a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time                  `json:"entryDate" binding:"required"`
	Description string                     `json:"description"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateJournalEntryRequest defines the data allowed for updating an entry.
// When Lines is present the full line set is replaced atomically.
type UpdateJournalEntryRequest struct {
	EntryDate   *time.Time                  `json:"entryDate"`
	Description *string                     `json:"description"`
	Lines       *[]CreateJournalLineRequest `json:"lines"`
}

// UpdateJournalLineRequest defines the data allowed for updating a single line.
// Setting debitAmount clears creditAmount and vice versa; providing both is
// rejected.
type UpdateJournalLineRequest struct {
	DebitAmount  *float64 `json:"debitAmount"`
	CreditAmount *float64 `json:"creditAmount"`
	Description  *string  `json:"description"`
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string `json:"lineID"`
	AccountID    string `json:"accountID"`
	AccountName  string `json:"accountName,omitempty"`
	DebitAmount  *int64 `json:"debitAmount"`
	CreditAmount *int64 `json:"creditAmount"`
	Description  string `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	CompanyID   string                `json:"companyID"`
	EntryDate   time.Time             `json:"entryDate"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to JournalLineResponse DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		AccountName:  l.AccountName,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
		Description:  l.Description,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = ToJournalLineResponse(&l)
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		CompanyID:   e.CompanyID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToListJournalEntriesResponse converts a page of domain entries to the list DTO.
func ToListJournalEntriesResponse(entries []domain.JournalEntry, nextToken *string) ListJournalEntriesResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return ListJournalEntriesResponse{
		Entries:   responses,
		NextToken: nextToken,
	}
}
