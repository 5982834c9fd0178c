package repositories

import (
	"context"
	"time"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	// Soft-deleted entries are not returned.
	FindEntryByID(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of a single entry, joined with
	// account name and type, in creation order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)

	// ListEntriesByCompany retrieves a paginated list of entries for a company
	// using token-based pagination, newest first. It returns the entries, a
	// token for the next page, and an error.
	ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data. Every
// mutation runs in its own database transaction and re-verifies the balance
// invariant (total debits = total credits > 0) over the entry's surviving
// lines before committing; an unbalanced result rolls back with
// apperrors.ErrUnbalanced.
type JournalWriter interface {
	// CreateEntry persists a new entry together with its lines.
	CreateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// AddLine appends a single line to an existing entry.
	AddLine(ctx context.Context, companyID string, line domain.JournalLine) error

	// UpdateLine rewrites the amounts and description of one line.
	UpdateLine(ctx context.Context, companyID string, line domain.JournalLine) error

	// DeleteLine removes a single line from an entry.
	DeleteLine(ctx context.Context, companyID string, entryID string, lineID string) error

	// ReplaceLines atomically updates the entry header and swaps the full
	// line set for the given one.
	ReplaceLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateEntryHeader updates entry date and description only.
	UpdateEntryHeader(ctx context.Context, entry domain.JournalEntry) error

	// SoftDeleteEntry marks an entry deleted. Deleting an already-deleted
	// entry is a no-op, not an error.
	SoftDeleteEntry(ctx context.Context, companyID string, entryID string, deletedBy string, deletedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
