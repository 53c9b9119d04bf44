package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so a repo can
// run inside a caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Transaction represents a collected payment row.
type Transaction struct {
	ID          string
	DisplayID   string // TXN-000001
	Reference   string
	Customer    string
	AmountCents int64
	Method      string
	Status      string
	OccurredAt  time.Time
}

// Payout represents a disbursement to the merchant bank account.
type Payout struct {
	ID          string
	DisplayID   string // PO-20260101-001
	AmountCents int64
	BankAccount string
	Status      string
	OccurredAt  time.Time
}

// Settlement represents one weekly settlement batch.
type Settlement struct {
	ID               string
	DisplayID        string // STL-20260101-001
	PeriodStart      time.Time
	PeriodEnd        time.Time
	AmountCents      int64
	TransactionCount int
	Status           string
}

// DailyReport is one day of aggregated volume.
type DailyReport struct {
	Date             time.Time
	TransactionCount int
	SuccessCount     int
	TotalCents       int64
}

// SuccessRate is the percentage of successful transactions, 0 for an empty day.
func (r DailyReport) SuccessRate() float64 {
	if r.TransactionCount == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TransactionCount) * 100
}

// AverageCents is the mean transaction size, 0 for an empty day.
func (r DailyReport) AverageCents() int64 {
	if r.TransactionCount == 0 {
		return 0
	}
	return r.TotalCents / int64(r.TransactionCount)
}
