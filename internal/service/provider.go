package service

import (
	"context"

	"github.com/paynex/paynex/internal/database/repository"
	"github.com/paynex/paynex/internal/payment"
)

// DataProvider is the dashboard's only data source. Pages never reach the
// store directly.
type DataProvider interface {
	Transactions(ctx context.Context) ([]repository.Transaction, error)
	Payouts(ctx context.Context) ([]repository.Payout, error)
	Settlements(ctx context.Context) ([]repository.Settlement, error)
	Reports(ctx context.Context) ([]repository.DailyReport, error)
	PaymentDetails() payment.Details
}

// RepoProvider reads from the seeded sqlite store.
type RepoProvider struct {
	TransactionRepo *repository.TransactionRepo
	PayoutRepo      *repository.PayoutRepo
	SettlementRepo  *repository.SettlementRepo
	ReportRepo      *repository.DailyReportRepo
	Details         payment.DetailsSource
}

func (p *RepoProvider) Transactions(ctx context.Context) ([]repository.Transaction, error) {
	return p.TransactionRepo.List(ctx)
}

func (p *RepoProvider) Payouts(ctx context.Context) ([]repository.Payout, error) {
	return p.PayoutRepo.List(ctx)
}

func (p *RepoProvider) Settlements(ctx context.Context) ([]repository.Settlement, error) {
	return p.SettlementRepo.List(ctx)
}

func (p *RepoProvider) Reports(ctx context.Context) ([]repository.DailyReport, error) {
	return p.ReportRepo.List(ctx)
}

func (p *RepoProvider) PaymentDetails() payment.Details {
	if p.Details == nil {
		return payment.Details{}
	}
	return p.Details.PaymentDetails()
}

// StaticProvider serves fixed fixtures.
type StaticProvider struct {
	TransactionRows []repository.Transaction
	PayoutRows      []repository.Payout
	SettlementRows  []repository.Settlement
	ReportRows      []repository.DailyReport
	Details         payment.Details
}

func (p *StaticProvider) Transactions(context.Context) ([]repository.Transaction, error) {
	return p.TransactionRows, nil
}

func (p *StaticProvider) Payouts(context.Context) ([]repository.Payout, error) {
	return p.PayoutRows, nil
}

func (p *StaticProvider) Settlements(context.Context) ([]repository.Settlement, error) {
	return p.SettlementRows, nil
}

func (p *StaticProvider) Reports(context.Context) ([]repository.DailyReport, error) {
	return p.ReportRows, nil
}

func (p *StaticProvider) PaymentDetails() payment.Details { return p.Details }
