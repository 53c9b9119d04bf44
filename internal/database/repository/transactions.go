package repository

import "context"

// TransactionRepo handles transactions.
type TransactionRepo struct {
	db DBTX
}

func NewTransactionRepo(db DBTX) *TransactionRepo { return &TransactionRepo{db: db} }

func (r *TransactionRepo) Insert(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(id, display_id, reference, customer, amount_cents, method, status, occurred_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`, t.ID, t.DisplayID, t.Reference, t.Customer, t.AmountCents, t.Method, t.Status, t.OccurredAt)
	return err
}

// List returns every transaction, newest first.
func (r *TransactionRepo) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, display_id, reference, customer, amount_cents, method, status, occurred_at
	FROM transactions
	ORDER BY occurred_at DESC, display_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.DisplayID, &t.Reference, &t.Customer, &t.AmountCents, &t.Method, &t.Status, &t.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountByStatus returns the number of transactions per status.
func (r *TransactionRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM transactions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
