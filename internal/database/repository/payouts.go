package repository

import "context"

// PayoutRepo handles payouts.
type PayoutRepo struct {
	db DBTX
}

func NewPayoutRepo(db DBTX) *PayoutRepo { return &PayoutRepo{db: db} }

func (r *PayoutRepo) Insert(ctx context.Context, p Payout) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO payouts(id, display_id, amount_cents, bank_account, status, occurred_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`, p.ID, p.DisplayID, p.AmountCents, p.BankAccount, p.Status, p.OccurredAt)
	return err
}

func (r *PayoutRepo) List(ctx context.Context) ([]Payout, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, display_id, amount_cents, bank_account, status, occurred_at
	FROM payouts
	ORDER BY occurred_at DESC, display_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Payout
	for rows.Next() {
		var p Payout
		if err := rows.Scan(&p.ID, &p.DisplayID, &p.AmountCents, &p.BankAccount, &p.Status, &p.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
