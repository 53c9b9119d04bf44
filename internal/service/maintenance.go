package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paynex/paynex/internal/database"
	"github.com/paynex/paynex/internal/sampledata"
)

// MaintenanceService regenerates the sample data set on request.
type MaintenanceService struct {
	DB     *sql.DB
	Counts sampledata.Counts
}

// Regenerate wipes every sample table and seeds a fresh data set from g in
// one transaction. On error the previous data set is left untouched.
func (s *MaintenanceService) Regenerate(ctx context.Context, g *sampledata.Generator) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"transactions", "payouts", "settlements", "daily_reports"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return sampledata.Seed(ctx, g, sampledata.NewRepos(tx), s.Counts)
	})
}
