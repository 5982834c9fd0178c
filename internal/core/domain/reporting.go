package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one row of an account ledger view, carrying the running
// balance after the line in ledger order (entry date asc, line creation asc,
// line id asc).
type LedgerLine struct {
	LineID           string    `json:"lineID"`
	EntryID          string    `json:"entryID"`
	EntryDate        time.Time `json:"date"`
	EntryDescription string    `json:"entryDescription"`
	Description      string    `json:"description,omitempty"`
	DebitAmount      int64     `json:"debitAmount"`
	CreditAmount     int64     `json:"creditAmount"`
	Balance          int64     `json:"balance"`
	CreatedAt        time.Time `json:"createdAt"`
}

// LedgerTotals are the account-wide sums over the filtered line set,
// independent of pagination.
type LedgerTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Net    decimal.Decimal `json:"net"`
}

// LedgerReport is the full ledger view for one account.
type LedgerReport struct {
	Account    Account      `json:"account"`
	Lines      []LedgerLine `json:"lines"`
	Totals     LedgerTotals `json:"totals"`
	LineCount  int64        `json:"lineCount"`
	Offset     int          `json:"offset"`
	Limit      int          `json:"limit"` // 0 means unpaginated
}

// TrialBalanceRow is the per-account row of a trial balance: raw debit and
// credit sums, their net, and the net folded onto its natural side.
type TrialBalanceRow struct {
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Status        CommonStatus    `json:"status"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Net           decimal.Decimal `json:"net"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalanceTotals aggregates all rows; DebitBalance and CreditBalance must
// come out equal iff every entry satisfies the balance invariant.
type TrialBalanceTotals struct {
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Net           decimal.Decimal `json:"net"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
}

// TrialBalanceReport is the trial balance for one company.
type TrialBalanceReport struct {
	Accounts []TrialBalanceRow  `json:"accounts"`
	Totals   TrialBalanceTotals `json:"totals"`
}

// BalanceSheetAccount is one account balance within a balance sheet section,
// already signed for the section's natural side.
type BalanceSheetAccount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceSheetSection groups accounts of one type with their section total.
type BalanceSheetSection struct {
	Total    decimal.Decimal       `json:"total"`
	Accounts []BalanceSheetAccount `json:"accounts"`
}

// BalanceSheetReport restricts to ASSET/LIABILITY/EQUITY accounts and reports
// whether assets = liabilities + equity within tolerance.
type BalanceSheetReport struct {
	Assets           BalanceSheetSection `json:"assets"`
	Liabilities      BalanceSheetSection `json:"liabilities"`
	Equity           BalanceSheetSection `json:"equity"`
	EquationBalanced bool                `json:"equationBalanced"`
}

// CompanySummary is the dashboard aggregate over an optional date range.
type CompanySummary struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalExpense       decimal.Decimal `json:"totalExpense"`
	NetProfit          decimal.Decimal `json:"netProfit"`
	JournalEntryCount  int64           `json:"journalEntryCount"`
	ActiveAccountCount int64           `json:"activeAccountCount"`
}

// MonthlyProfitLoss is one month's bucket of the trailing profit/loss chart.
// Month is formatted as YYYY-MM.
type MonthlyProfitLoss struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlyEntryCount is one month's journal entry count.
type MonthlyEntryCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}
