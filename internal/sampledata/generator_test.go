package sampledata

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paynex/paynex/internal/database"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestTransactionShapes(t *testing.T) {
	g := NewGenerator(42, now)
	txs := g.Transactions(50)
	require.Len(t, txs, 50)
	require.Equal(t, "TXN-000001", txs[0].DisplayID)
	require.Equal(t, "TXN-000050", txs[49].DisplayID)

	ref := regexp.MustCompile(`^REF-\d{6}$`)
	for _, tx := range txs {
		require.Regexp(t, ref, tx.Reference)
		require.Contains(t, TransactionStatuses, tx.Status)
		require.GreaterOrEqual(t, tx.AmountCents, int64(5000))
		require.Less(t, tx.AmountCents, int64(505000))
		require.False(t, tx.OccurredAt.After(now.Add(24*time.Hour)))
		require.True(t, tx.OccurredAt.After(now.AddDate(0, 0, -91)))
	}
}

func TestPayoutAndSettlementShapes(t *testing.T) {
	g := NewGenerator(7, now)
	po := regexp.MustCompile(`^PO-\d{8}-\d{3}$`)
	acct := regexp.MustCompile(`^.+ \*\*\*\*\d{4}$`)
	for _, p := range g.Payouts(30) {
		require.Regexp(t, po, p.DisplayID)
		require.Regexp(t, acct, p.BankAccount)
		require.Contains(t, PayoutStatuses, p.Status)
	}

	stl := g.Settlements(20)
	require.Len(t, stl, 20)
	require.Equal(t, "STL-20260315-001", stl[0].DisplayID)
	require.Equal(t, "Pending", stl[0].Status)
	require.Equal(t, "Pending", stl[1].Status)
	for _, s := range stl[2:] {
		require.Equal(t, "Settled", s.Status)
	}
	require.Equal(t, 6*24*time.Hour, stl[3].PeriodEnd.Sub(stl[3].PeriodStart))
}

func TestReportsDaily(t *testing.T) {
	reports := NewGenerator(1, now).Reports(30)
	require.Len(t, reports, 30)
	require.Equal(t, "2026-03-15", reports[0].Date.Format("2006-01-02"))
	require.Equal(t, "2026-02-14", reports[29].Date.Format("2006-01-02"))
	for _, r := range reports {
		require.GreaterOrEqual(t, r.SuccessRate(), 83.0)
		require.LessOrEqual(t, r.SuccessRate(), 95.0)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := NewGenerator(99, now).PaymentDetails()
	b := NewGenerator(99, now).PaymentDetails()
	require.Equal(t, a, b)
	require.GreaterOrEqual(t, a.Amount, 100.0)
	require.Less(t, a.Amount, 1100.0)
}

func TestSeedWritesEveryTable(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMigrated(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repos := NewRepos(db)
	require.NoError(t, Seed(ctx, NewGenerator(3, now), repos, Counts{Transactions: 5, Payouts: 4, Settlements: 3, Reports: 2}))

	txs, err := repos.Transactions.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 5)
	pos, err := repos.Payouts.List(ctx)
	require.NoError(t, err)
	require.Len(t, pos, 4)
	stl, err := repos.Settlements.List(ctx)
	require.NoError(t, err)
	require.Len(t, stl, 3)
	days, err := repos.Reports.List(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)
}

func TestNegativeCountsGenerateNothing(t *testing.T) {
	g := NewGenerator(1, now)
	require.Empty(t, g.Transactions(-5))
	require.Empty(t, g.Payouts(-1))
	require.Empty(t, g.Settlements(-1))
	require.Empty(t, g.Reports(-1))
}
