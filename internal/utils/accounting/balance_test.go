package accounting

import (
	"testing"

	"github.com/openbooks-dev/bookkeeping_backend/internal/apperrors"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func amt(v int64) *int64 { return &v }

func TestCheckBalanced(t *testing.T) {
	tests := []struct {
		name    string
		debit   int64
		credit  int64
		wantErr bool
	}{
		{"equal positive totals pass", 100, 100, false},
		{"unequal totals fail", 100, 99, true},
		{"zero totals fail", 0, 0, true},
		{"zero debit fails", 0, 100, true},
		{"zero credit fails", 100, 0, true},
		{"negative totals fail", -50, -50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBalanced(tt.debit, tt.credit)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSumLines(t *testing.T) {
	lines := []domain.JournalLine{
		{DebitAmount: amt(100)},
		{CreditAmount: amt(60)},
		{CreditAmount: amt(40)},
	}
	debit, credit := SumLines(lines)
	assert.Equal(t, int64(100), debit)
	assert.Equal(t, int64(100), credit)
	assert.NoError(t, CheckLinesBalanced(lines))
}

func TestCheckLinesBalancedEmptySetFails(t *testing.T) {
	assert.ErrorIs(t, CheckLinesBalanced(nil), apperrors.ErrUnbalanced)
}
