// Package sampledata produces the synthetic merchant data shown by the
// dashboard and seeds it into the in-memory store.
package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/paynex/paynex/internal/database/repository"
	"github.com/paynex/paynex/internal/payment"
)

var (
	customers = []string{
		"John Doe", "Jane Smith", "Bob Johnson", "Alice Williams", "Charlie Brown",
		"Diana Prince", "Ethan Hunt", "Fiona Chen", "George Wilson", "Hannah Lee",
	}
	methods = []string{
		"FPX - Maybank2u", "FPX - CIMB Clicks", "FPX - Public Bank", "FPX - RHB Bank",
		"FPX - Hong Leong", "FPX - AmBank", "FPX - UOB", "FPX - OCBC",
	}
	payoutBanks = []string{"Maybank", "CIMB Bank", "Public Bank", "RHB Bank", "Hong Leong Bank", "AmBank"}

	TransactionStatuses = []string{"Success", "Pending", "Failed"}
	PayoutStatuses      = []string{"Completed", "Pending", "Processing"}
	SettlementStatuses  = []string{"Settled", "Pending"}
)

// Counts sets how many rows of each kind are generated.
type Counts struct {
	Transactions int
	Payouts      int
	Settlements  int
	Reports      int
}

// DefaultCounts matches the table sizes of the dashboard.
var DefaultCounts = Counts{Transactions: 50, Payouts: 30, Settlements: 20, Reports: 30}

// Generator draws sample rows. A fixed seed gives a reproducible data set.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator seeds the generator; seed 0 means time based.
func NewGenerator(seed int64, now time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now.UTC()}
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// cents draws an amount in [min, min+span) major units with two decimals.
func (g *Generator) cents(min, span int64) int64 {
	return min*100 + g.rng.Int63n(span*100)
}

// Reference draws a REF-nnnnnn payment reference.
func (g *Generator) Reference() string {
	return fmt.Sprintf("REF-%06d", g.rng.Intn(1000000))
}

func (g *Generator) recent(maxDaysAgo int) time.Time {
	day := g.now.AddDate(0, 0, -g.rng.Intn(maxDaysAgo))
	y, m, d := day.Date()
	return time.Date(y, m, d, g.rng.Intn(24), g.rng.Intn(60), 0, 0, time.UTC)
}

func (g *Generator) day(daysAgo int) time.Time {
	y, m, d := g.now.AddDate(0, 0, -daysAgo).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Transactions returns n transactions dated within the last 90 days.
func (g *Generator) Transactions(n int) []repository.Transaction {
	n = max(n, 0)
	out := make([]repository.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, repository.Transaction{
			ID:          uuid.NewString(),
			DisplayID:   fmt.Sprintf("TXN-%06d", i+1),
			Reference:   g.Reference(),
			Customer:    g.pick(customers),
			AmountCents: g.cents(50, 5000),
			Method:      g.pick(methods),
			Status:      g.pick(TransactionStatuses),
			OccurredAt:  g.recent(90),
		})
	}
	return out
}

// Payouts returns n payouts dated within the last 60 days.
func (g *Generator) Payouts(n int) []repository.Payout {
	n = max(n, 0)
	out := make([]repository.Payout, 0, n)
	for i := 0; i < n; i++ {
		at := g.recent(60)
		out = append(out, repository.Payout{
			ID:          uuid.NewString(),
			DisplayID:   fmt.Sprintf("PO-%s-%03d", at.Format("20060102"), i+1),
			AmountCents: g.cents(500, 10000),
			BankAccount: fmt.Sprintf("%s ****%04d", g.pick(payoutBanks), g.rng.Intn(10000)),
			Status:      g.pick(PayoutStatuses),
			OccurredAt:  at,
		})
	}
	return out
}

// Settlements returns n consecutive weekly batches ending today. The two
// most recent batches are still pending.
func (g *Generator) Settlements(n int) []repository.Settlement {
	n = max(n, 0)
	out := make([]repository.Settlement, 0, n)
	for i := 0; i < n; i++ {
		end := g.day(i * 7)
		count := 50 + g.rng.Intn(200)
		status := "Settled"
		if i < 2 {
			status = "Pending"
		}
		out = append(out, repository.Settlement{
			ID:               uuid.NewString(),
			DisplayID:        fmt.Sprintf("STL-%s-%03d", end.Format("20060102"), i+1),
			PeriodStart:      end.AddDate(0, 0, -6),
			PeriodEnd:        end,
			AmountCents:      int64(count) * g.cents(100, 500),
			TransactionCount: count,
			Status:           status,
		})
	}
	return out
}

// Reports returns one aggregate per day for the last n days, newest first.
func (g *Generator) Reports(n int) []repository.DailyReport {
	n = max(n, 0)
	out := make([]repository.DailyReport, 0, n)
	for i := 0; i < n; i++ {
		count := 50 + g.rng.Intn(200)
		success := int(float64(count) * (0.85 + g.rng.Float64()*0.1))
		out = append(out, repository.DailyReport{
			Date:             g.day(i),
			TransactionCount: count,
			SuccessCount:     success,
			TotalCents:       int64(count) * g.cents(100, 500),
		})
	}
	return out
}

// PaymentDetails draws the amount and reference shown on the payment form.
func (g *Generator) PaymentDetails() payment.Details {
	return payment.Details{
		Amount:    float64(g.cents(100, 1000)) / 100,
		Reference: g.Reference(),
	}
}

// Repos bundles repos used by Seed.
type Repos struct {
	Transactions *repository.TransactionRepo
	Payouts      *repository.PayoutRepo
	Settlements  *repository.SettlementRepo
	Reports      *repository.DailyReportRepo
}

// NewRepos binds every repo to db, which may be an open transaction.
func NewRepos(db repository.DBTX) Repos {
	return Repos{
		Transactions: repository.NewTransactionRepo(db),
		Payouts:      repository.NewPayoutRepo(db),
		Settlements:  repository.NewSettlementRepo(db),
		Reports:      repository.NewDailyReportRepo(db),
	}
}

// Seed generates a full data set and writes it through repos.
func Seed(ctx context.Context, g *Generator, repos Repos, counts Counts) error {
	for _, t := range g.Transactions(counts.Transactions) {
		if err := repos.Transactions.Insert(ctx, t); err != nil {
			return fmt.Errorf("seed transaction %s: %w", t.DisplayID, err)
		}
	}
	for _, p := range g.Payouts(counts.Payouts) {
		if err := repos.Payouts.Insert(ctx, p); err != nil {
			return fmt.Errorf("seed payout %s: %w", p.DisplayID, err)
		}
	}
	for _, s := range g.Settlements(counts.Settlements) {
		if err := repos.Settlements.Insert(ctx, s); err != nil {
			return fmt.Errorf("seed settlement %s: %w", s.DisplayID, err)
		}
	}
	for _, r := range g.Reports(counts.Reports) {
		if err := repos.Reports.Upsert(ctx, r); err != nil {
			return fmt.Errorf("seed report %s: %w", r.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}
