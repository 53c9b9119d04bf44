package service

import (
	"context"
	"sort"
	"time"
)

// Summary feeds the dashboard cards.
type Summary struct {
	VolumeCents        int64
	TransactionCount   int
	SuccessRate        float64
	PendingPayouts     int
	PendingPayoutCents int64
}

// VolumePoint is one day of the volume chart.
type VolumePoint struct {
	Day         time.Time
	VolumeCents int64
}

// Summarize computes the dashboard cards from the transaction and payout
// lists. Volume counts successful transactions only.
func Summarize(ctx context.Context, p DataProvider) (Summary, error) {
	var s Summary
	txs, err := p.Transactions(ctx)
	if err != nil {
		return s, err
	}
	success := 0
	for _, tx := range txs {
		s.TransactionCount++
		if tx.Status == "Success" {
			success++
			s.VolumeCents += tx.AmountCents
		}
	}
	if s.TransactionCount > 0 {
		s.SuccessRate = float64(success) / float64(s.TransactionCount) * 100
	}

	payouts, err := p.Payouts(ctx)
	if err != nil {
		return s, err
	}
	for _, po := range payouts {
		if po.Status == "Pending" || po.Status == "Processing" {
			s.PendingPayouts++
			s.PendingPayoutCents += po.AmountCents
		}
	}
	return s, nil
}

// VolumeSeries returns the daily report totals oldest first.
func VolumeSeries(ctx context.Context, p DataProvider) ([]VolumePoint, error) {
	reports, err := p.Reports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]VolumePoint, 0, len(reports))
	for _, r := range reports {
		out = append(out, VolumePoint{Day: r.Date, VolumeCents: r.TotalCents})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}
