package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/paynex/paynex/internal/config"
	"github.com/paynex/paynex/internal/database"
	"github.com/paynex/paynex/internal/logging"
	"github.com/paynex/paynex/internal/metrics"
	"github.com/paynex/paynex/internal/prefs"
	"github.com/paynex/paynex/internal/sampledata"
	"github.com/paynex/paynex/internal/service"
	"github.com/paynex/paynex/internal/tui"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "paynex",
		Short:        "Paynex - payment admin dashboard",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context())
		},
	}
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is the wiring shared by the dashboard and the export command.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *sql.DB
	provider *service.RepoProvider
	closeLog func() error
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, closeLog, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Printf("warn: logging disabled: %v", err)
	}

	db, err := database.OpenMigrated(database.MemoryPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open db: %w", err)
	}

	repos := sampledata.NewRepos(db)

	gen := sampledata.NewGenerator(cfg.Data.Seed, time.Now())
	if err := sampledata.Seed(ctx, gen, repos, counts(cfg)); err != nil {
		_ = db.Close()
		_ = closeLog()
		return nil, fmt.Errorf("seed: %w", err)
	}
	logger.Info("sample data ready", "seed", cfg.Data.Seed)

	return &session{
		cfg:    cfg,
		logger: logger,
		db:     db,
		provider: &service.RepoProvider{
			TransactionRepo: repos.Transactions,
			PayoutRepo:      repos.Payouts,
			SettlementRepo:  repos.Settlements,
			ReportRepo:      repos.Reports,
			Details:         gen,
		},
		closeLog: closeLog,
	}, nil
}

func (s *session) Close() {
	_ = s.db.Close()
	_ = s.closeLog()
}

func counts(cfg config.Config) sampledata.Counts {
	return sampledata.Counts{
		Transactions: cfg.Data.Transactions,
		Payouts:      cfg.Data.Payouts,
		Settlements:  cfg.Data.Settlements,
		Reports:      cfg.Data.Reports,
	}
}

func runDashboard(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard needs an interactive terminal; use `paynex export` for scripted output")
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	store, err := prefs.DefaultStore()
	if err != nil {
		s.logger.Warn("prefs disabled", "err", err)
		store = nil
	}
	m := metrics.New()
	seed := s.cfg.Data.Seed

	app := tui.New(ctx, s.cfg, tui.Deps{
		Provider: s.provider,
		Exporter: &service.Exporter{Dir: s.cfg.Export.Dir},
		Maintenance: &service.MaintenanceService{
			DB:     s.db,
			Counts: counts(s.cfg),
		},
		// a fixed seed moves forward so every reseed draws new rows
		NewGenerator: func() *sampledata.Generator {
			if seed != 0 {
				seed++
			}
			return sampledata.NewGenerator(seed, time.Now())
		},
		Prefs:   store,
		Metrics: m,
		Logger:  s.logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()
	if err := m.WriteTextfile(s.cfg.Metrics.Textfile); err != nil {
		s.logger.Warn("write metrics", "err", err)
	}
	return runErr
}
