// Package accounting implements the balance invariant check shared by the
// posting engine and its repositories. Amounts are integer minor units
// post-rounding, so the check uses exact integer accumulation; no floating
// tolerance is needed.
package accounting

import (
	"fmt"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
)

// CheckBalanced is the single gate every entry mutation must pass: total
// debits equal total credits and both are strictly positive.
func CheckBalanced(debitTotal, creditTotal int64) error {
	if debitTotal <= 0 || creditTotal <= 0 || debitTotal != creditTotal {
		return fmt.Errorf("%w: debit total is %d, credit total is %d",
			apperrors.ErrUnbalanced, debitTotal, creditTotal)
	}
	return nil
}

// SumLines computes debit and credit totals over a line set.
func SumLines(lines []domain.JournalLine) (debitTotal, creditTotal int64) {
	for _, l := range lines {
		debitTotal += l.Debit()
		creditTotal += l.Credit()
	}
	return debitTotal, creditTotal
}

// CheckLinesBalanced sums lines and applies CheckBalanced.
func CheckLinesBalanced(lines []domain.JournalLine) error {
	debit, credit := SumLines(lines)
	return CheckBalanced(debit, credit)
}
