package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	portsrepo "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/accounting"
	"github.com/openbooks-dev/bookkeeping_backend/internal/utils/rounding"
)

var (
	ErrEntryMinLines   = errors.New("journal entry must have at least one line")
	ErrAccountNotFound = errors.New("account not found")
	ErrNoLineUpdates   = errors.New("no line fields to update")
)

// journalService provides the journal entry mutation operations. Every write
// path funnels through the same validation: each line carries exactly one
// positive side, amounts are rounded half-up to whole units, and the entry
// must balance before and after persistence.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
	companyRepo portsrepo.CompanyReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, companyRepo portsrepo.CompanyReader, auditSink portsrepo.AuditSink) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: BaseService{AuditSink: auditSink},
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// roundAmount rounds a raw request amount half-up to whole units and checks
// that it stays positive. lineNo is 1-based for error messages.
func roundAmount(value float64, lineNo int) (int64, error) {
	amount, ok := rounding.HalfUpInt(value)
	if !ok {
		return 0, fmt.Errorf("%w: line %d: amount is not a finite number", apperrors.ErrValidation, lineNo)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: line %d: amount must round to a positive whole number", apperrors.ErrValidation, lineNo)
	}
	return amount, nil
}

// buildLine validates one line request and converts it to a domain line.
// Exactly one of debitAmount/creditAmount must be provided and positive.
func buildLine(req dto.CreateJournalLineRequest, lineNo int) (domain.JournalLine, error) {
	line := domain.JournalLine{
		AccountID:   req.AccountID,
		Description: req.Description,
	}

	switch {
	case req.DebitAmount != nil && req.CreditAmount != nil:
		return line, fmt.Errorf("%w: line %d: provide exactly one of debitAmount or creditAmount", apperrors.ErrValidation, lineNo)
	case req.DebitAmount != nil:
		amount, err := roundAmount(*req.DebitAmount, lineNo)
		if err != nil {
			return line, err
		}
		line.DebitAmount = &amount
	case req.CreditAmount != nil:
		amount, err := roundAmount(*req.CreditAmount, lineNo)
		if err != nil {
			return line, err
		}
		line.CreditAmount = &amount
	default:
		return line, fmt.Errorf("%w: line %d: provide exactly one of debitAmount or creditAmount", apperrors.ErrValidation, lineNo)
	}

	return line, nil
}

// buildLines validates and converts a full line set. A single line is
// accepted here; the balance check rejects it later since one positive side
// can never balance.
func buildLines(reqs []dto.CreateJournalLineRequest) ([]domain.JournalLine, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEntryMinLines)
	}
	lines := make([]domain.JournalLine, len(reqs))
	for i, req := range reqs {
		line, err := buildLine(req, i+1)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}

// checkCompanyActive verifies the company exists, is not soft-deleted, and
// has not been marked inactive.
func (s *journalService) checkCompanyActive(ctx context.Context, companyID string) error {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.IsDeleted() {
		return apperrors.ErrNotFound
	}
	if company.Status != domain.StatusActive {
		return apperrors.ErrInactive
	}
	return nil
}

// checkAccounts verifies every referenced account belongs to the company and
// is active, and returns the accounts for name denormalization.
func (s *journalService) checkAccounts(ctx context.Context, companyID string, lines []domain.JournalLine) (map[string]domain.Account, error) {
	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.AccountID] {
			seen[line.AccountID] = true
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: %w: ID %s", apperrors.ErrValidation, ErrAccountNotFound, id)
		}
		if acc.Status != domain.StatusActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrInactive, id)
		}
	}
	return accounts, nil
}

// CreateEntry validates, rounds and persists a new balanced journal entry.
func (s *journalService) CreateEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if err := s.checkCompanyActive(ctx, companyID); err != nil {
		return nil, err
	}

	lines, err := buildLines(req.Lines)
	if err != nil {
		return nil, err
	}

	accounts, err := s.checkAccounts(ctx, companyID, lines)
	if err != nil {
		return nil, err
	}

	// Balance precondition; the repository re-checks inside the transaction.
	if err := accounting.CheckLinesBalanced(lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
		lines[i].AuditFields = audit
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		CompanyID:   companyID,
		EntryDate:   req.EntryDate,
		Description: req.Description,
		AuditFields: audit,
	}

	if err := s.journalRepo.CreateEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("company_id", companyID))
		return nil, err
	}

	for i := range lines {
		if acc, ok := accounts[lines[i].AccountID]; ok {
			lines[i].AccountName = acc.Name
			lines[i].AccountType = acc.AccountType
		}
	}
	entry.Lines = lines

	s.LogInfo(ctx, "Journal entry created", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditCreate, "journal_entry", entryID, map[string]any{
		"lineCount": len(lines),
	})

	return &entry, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, companyID, entryID string, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of journal entries with their lines.
func (s *journalService) ListEntries(ctx context.Context, companyID string, actor domain.Actor, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	entryIDs := make([]string, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.EntryID
	}
	linesByEntry, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}

	resp := dto.ToListJournalEntriesResponse(entries, nextToken)
	return &resp, nil
}

// AddLine appends a line to an existing entry. The repository rejects the
// addition unless the entry still balances afterwards.
func (s *journalService) AddLine(ctx context.Context, companyID, entryID string, req dto.CreateJournalLineRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	line, err := buildLine(req, 1)
	if err != nil {
		return nil, err
	}
	if _, err := s.checkAccounts(ctx, companyID, []domain.JournalLine{line}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line.LineID = uuid.NewString()
	line.EntryID = entryID
	line.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actor.UserID,
	}

	if err := s.journalRepo.AddLine(ctx, companyID, line); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "journal_entry", entryID, map[string]any{
		"addedLineID": line.LineID,
	})

	return s.GetEntryByID(ctx, companyID, entryID, actor)
}

// UpdateLine rewrites one line. Providing a debit amount clears the credit
// side and vice versa; providing both is rejected.
func (s *journalService) UpdateLine(ctx context.Context, companyID, entryID, lineID string, req dto.UpdateJournalLineRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	if req.DebitAmount == nil && req.CreditAmount == nil && req.Description == nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoLineUpdates)
	}
	if req.DebitAmount != nil && req.CreditAmount != nil {
		return nil, fmt.Errorf("%w: provide exactly one of debitAmount or creditAmount", apperrors.ErrValidation)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	var current *domain.JournalLine
	for i := range lines {
		if lines[i].LineID == lineID {
			current = &lines[i]
			break
		}
	}
	if current == nil {
		return nil, apperrors.ErrNotFound
	}

	updated := *current
	switch {
	case req.DebitAmount != nil:
		amount, err := roundAmount(*req.DebitAmount, 1)
		if err != nil {
			return nil, err
		}
		updated.DebitAmount = &amount
		updated.CreditAmount = nil
	case req.CreditAmount != nil:
		amount, err := roundAmount(*req.CreditAmount, 1)
		if err != nil {
			return nil, err
		}
		updated.CreditAmount = &amount
		updated.DebitAmount = nil
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	updated.EntryID = entryID
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = actor.UserID

	if err := s.journalRepo.UpdateLine(ctx, companyID, updated); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "journal_entry", entryID, map[string]any{
		"updatedLineID": lineID,
	})

	return s.GetEntryByID(ctx, companyID, entryID, actor)
}

// DeleteLine removes one line from an entry. Removing a line of the last
// balancing pair fails the balance re-check and is rejected.
func (s *journalService) DeleteLine(ctx context.Context, companyID, entryID, lineID string, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	if err := s.journalRepo.DeleteLine(ctx, companyID, entryID, lineID); err != nil {
		return nil, err
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "journal_entry", entryID, map[string]any{
		"deletedLineID": lineID,
	})

	return s.GetEntryByID(ctx, companyID, entryID, actor)
}

// UpdateEntry updates header fields and, when lines are provided, atomically
// replaces the full line set.
func (s *journalService) UpdateEntry(ctx context.Context, companyID, entryID string, req dto.UpdateJournalEntryRequest, actor domain.Actor) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actor.UserID

	if req.Lines != nil {
		lines, err := buildLines(*req.Lines)
		if err != nil {
			return nil, err
		}
		if _, err := s.checkAccounts(ctx, companyID, lines); err != nil {
			return nil, err
		}
		if err := accounting.CheckLinesBalanced(lines); err != nil {
			return nil, err
		}

		audit := domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		}
		for i := range lines {
			lines[i].LineID = uuid.NewString()
			lines[i].EntryID = entryID
			lines[i].AuditFields = audit
		}

		if err := s.journalRepo.ReplaceLines(ctx, *entry, lines); err != nil {
			return nil, err
		}
	} else {
		if req.EntryDate == nil && req.Description == nil {
			return nil, fmt.Errorf("%w: no entry fields to update", apperrors.ErrValidation)
		}
		if err := s.journalRepo.UpdateEntryHeader(ctx, *entry); err != nil {
			return nil, err
		}
	}

	s.RecordAudit(ctx, actor, companyID, domain.AuditUpdate, "journal_entry", entryID, map[string]any{
		"replacedLines": req.Lines != nil,
	})

	return s.GetEntryByID(ctx, companyID, entryID, actor)
}

// DeleteEntry soft-deletes an entry. Deleting twice is a no-op.
func (s *journalService) DeleteEntry(ctx context.Context, companyID, entryID string, actor domain.Actor) error {
	if err := s.AuthorizeCompany(ctx, actor, companyID); err != nil {
		return err
	}

	if err := s.journalRepo.SoftDeleteEntry(ctx, companyID, entryID, actor.UserID, time.Now().UTC()); err != nil {
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	s.RecordAudit(ctx, actor, companyID, domain.AuditDelete, "journal_entry", entryID, nil)
	return nil
}
