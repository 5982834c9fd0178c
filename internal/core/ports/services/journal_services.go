package services

import (
	"context"

	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal entry data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific journal entry with its lines.
	GetEntryByID(ctx context.Context, companyID string, entryID string, actor domain.Actor) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries in a company.
	ListEntries(ctx context.Context, companyID string, actor domain.Actor, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entry data
type JournalWriterSvc interface {
	// CreateEntry validates, rounds and persists a new balanced entry.
	CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)

	// UpdateEntry updates entry header fields and, when lines are provided,
	// atomically replaces the full line set.
	UpdateEntry(ctx context.Context, companyID string, entryID string, req dto.UpdateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error)

	// AddLine appends a line to an existing entry, keeping it balanced.
	AddLine(ctx context.Context, companyID string, entryID string, req dto.CreateJournalLineRequest, actor domain.Actor) (*domain.JournalEntry, error)

	// UpdateLine rewrites one line's amounts or description, keeping the
	// entry balanced.
	UpdateLine(ctx context.Context, companyID string, entryID string, lineID string, req dto.UpdateJournalLineRequest, actor domain.Actor) (*domain.JournalEntry, error)

	// DeleteLine removes one line from an entry, keeping it balanced.
	DeleteLine(ctx context.Context, companyID string, entryID string, lineID string, actor domain.Actor) (*domain.JournalEntry, error)

	// DeleteEntry soft-deletes an entry. Idempotent.
	DeleteEntry(ctx context.Context, companyID string, entryID string, actor domain.Actor) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
