package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/paynex/paynex/internal/sampledata"
	"github.com/paynex/paynex/internal/table"
)

// Feature keys name the exportable tables.
const (
	FeatureTransactions = "transactions"
	FeaturePayouts      = "payouts"
	FeatureSettlements  = "settlements"
	FeatureReports      = "reports"
)

// Features lists every table feature in sidebar order.
var Features = []string{FeatureTransactions, FeaturePayouts, FeatureSettlements, FeatureReports}

const (
	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

// DefaultCurrency prefixes amounts when no currency is configured.
const DefaultCurrency = "MYR"

// FormatAmount renders cents as "MYR 1,234.56". An empty currency means
// DefaultCurrency.
func FormatAmount(currency string, cents int64) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + humanize.FormatFloat("#,###.##", float64(cents)/100)
}

func statusOptions(statuses []string) []string {
	return append([]string{table.AllStatus}, statuses...)
}

// Catalog builds the feature tables from a provider, formatting amounts
// in Currency.
type Catalog struct {
	Provider DataProvider
	Currency string
}

func (c Catalog) amount(cents int64) string {
	return FormatAmount(c.Currency, cents)
}

// Table loads one feature's rows and formats them for display.
func (c Catalog) Table(ctx context.Context, feature string) (*table.Table, error) {
	switch feature {
	case FeatureTransactions:
		return c.transactionsTable(ctx)
	case FeaturePayouts:
		return c.payoutsTable(ctx)
	case FeatureSettlements:
		return c.settlementsTable(ctx)
	case FeatureReports:
		return c.reportsTable(ctx)
	}
	return nil, fmt.Errorf("unknown feature %q", feature)
}

// Tables builds every feature table.
func (c Catalog) Tables(ctx context.Context) (map[string]*table.Table, error) {
	out := make(map[string]*table.Table, len(Features))
	for _, f := range Features {
		t, err := c.Table(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("build %s table: %w", f, err)
		}
		out[f] = t
	}
	return out, nil
}

func (c Catalog) transactionsTable(ctx context.Context) (*table.Table, error) {
	txs, err := c.Provider.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, table.Row{
			Cells: []string{
				tx.DisplayID, tx.Reference, tx.Customer, c.amount(tx.AmountCents),
				tx.Method, tx.Status, tx.OccurredAt.Format(dateTimeLayout),
			},
			Status: tx.Status,
		})
	}
	t := table.New(FeatureTransactions,
		[]string{"Transaction ID", "Reference", "Customer", "Amount", "Payment Method", "Status", "Date"}, rows)
	t.StatusOptions = statusOptions(sampledata.TransactionStatuses)
	return t, nil
}

func (c Catalog) payoutsTable(ctx context.Context) (*table.Table, error) {
	payouts, err := c.Provider.Payouts(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(payouts))
	for _, po := range payouts {
		rows = append(rows, table.Row{
			Cells:  []string{po.DisplayID, c.amount(po.AmountCents), po.BankAccount, po.Status, po.OccurredAt.Format(dateTimeLayout)},
			Status: po.Status,
		})
	}
	t := table.New(FeaturePayouts, []string{"Payout ID", "Amount", "Bank Account", "Status", "Date"}, rows)
	t.StatusOptions = statusOptions(sampledata.PayoutStatuses)
	return t, nil
}

func (c Catalog) settlementsTable(ctx context.Context) (*table.Table, error) {
	settlements, err := c.Provider.Settlements(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(settlements))
	for _, s := range settlements {
		period := s.PeriodStart.Format(dateLayout) + " to " + s.PeriodEnd.Format(dateLayout)
		rows = append(rows, table.Row{
			Cells: []string{
				s.DisplayID, period, c.amount(s.AmountCents),
				strconv.Itoa(s.TransactionCount), s.Status, s.PeriodEnd.Format(dateLayout),
			},
			Status: s.Status,
		})
	}
	t := table.New(FeatureSettlements,
		[]string{"Settlement ID", "Period", "Amount", "Transactions", "Status", "Date"}, rows)
	t.StatusOptions = statusOptions(sampledata.SettlementStatuses)
	return t, nil
}

// reports carry no status column, so only free-text search applies
func (c Catalog) reportsTable(ctx context.Context) (*table.Table, error) {
	reports, err := c.Provider.Reports(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, table.Row{Cells: []string{
			r.Date.Format(dateLayout),
			strconv.Itoa(r.TransactionCount),
			c.amount(r.TotalCents),
			strconv.FormatFloat(r.SuccessRate(), 'f', 1, 64) + "%",
			c.amount(r.AverageCents()),
		}})
	}
	return table.New(FeatureReports,
		[]string{"Date", "Transactions", "Total Amount", "Success Rate", "Avg Transaction"}, rows), nil
}
