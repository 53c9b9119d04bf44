package repository

import "context"

// SettlementRepo handles settlement batches.
type SettlementRepo struct {
	db DBTX
}

func NewSettlementRepo(db DBTX) *SettlementRepo { return &SettlementRepo{db: db} }

func (r *SettlementRepo) Insert(ctx context.Context, s Settlement) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO settlements(id, display_id, period_start, period_end, amount_cents, transaction_count, status)
	VALUES(?, ?, ?, ?, ?, ?, ?);
	`, s.ID, s.DisplayID, s.PeriodStart, s.PeriodEnd, s.AmountCents, s.TransactionCount, s.Status)
	return err
}

func (r *SettlementRepo) List(ctx context.Context) ([]Settlement, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, display_id, period_start, period_end, amount_cents, transaction_count, status
	FROM settlements
	ORDER BY period_end DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Settlement
	for rows.Next() {
		var s Settlement
		if err := rows.Scan(&s.ID, &s.DisplayID, &s.PeriodStart, &s.PeriodEnd, &s.AmountCents, &s.TransactionCount, &s.Status); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DailyReportRepo handles per-day aggregates.
type DailyReportRepo struct {
	db DBTX
}

func NewDailyReportRepo(db DBTX) *DailyReportRepo { return &DailyReportRepo{db: db} }

func (r *DailyReportRepo) Upsert(ctx context.Context, d DailyReport) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO daily_reports(report_date, transaction_count, success_count, total_cents)
	VALUES(?, ?, ?, ?)
	ON CONFLICT(report_date) DO UPDATE SET
	 transaction_count=excluded.transaction_count,
	 success_count=excluded.success_count,
	 total_cents=excluded.total_cents;
	`, d.Date, d.TransactionCount, d.SuccessCount, d.TotalCents)
	return err
}

func (r *DailyReportRepo) List(ctx context.Context) ([]DailyReport, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT report_date, transaction_count, success_count, total_cents
	FROM daily_reports
	ORDER BY report_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DailyReport
	for rows.Next() {
		var d DailyReport
		if err := rows.Scan(&d.Date, &d.TransactionCount, &d.SuccessCount, &d.TotalCents); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
