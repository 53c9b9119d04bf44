package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/paynex/paynex/internal/service"
	"github.com/paynex/paynex/internal/table"
)

func exportCmd() *cobra.Command {
	var (
		search string
		status string
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:       "export <feature>",
		Short:     "Export a filtered table of the sample data",
		Long:      "Export one of " + strings.Join(service.Features, ", ") + " with the same search and status filter the dashboard applies.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: service.Features,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			catalog := service.Catalog{Provider: s.provider, Currency: s.cfg.UI.Currency}
			t, err := catalog.Table(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			visible := t.Apply(table.Filter{Search: search, Status: status})

			dir := out
			if dir == "" {
				dir = s.cfg.Export.Dir
			}
			exp := &service.Exporter{Dir: dir, Now: time.Now}
			path, err := exp.Export(t, format)
			if err != nil {
				return err
			}
			s.logger.Info("export", "feature", t.Feature, "format", format, "rows", visible, "path", path)
			printSummary(cmd, path, visible, len(t.Rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "Case-insensitive substring filter")
	cmd.Flags().StringVarP(&status, "status", "s", table.AllStatus, "Status filter")
	cmd.Flags().StringVarP(&format, "format", "f", service.FormatCSV, "Output format (csv, xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default from config)")
	return cmd
}

func printSummary(cmd *cobra.Command, path string, visible, total int) {
	p := termenv.EnvColorProfile()
	count := termenv.String(fmt.Sprintf("%d of %d rows", visible, total)).Foreground(p.Color("#a6e3a1")).Bold()
	dest := termenv.String(path).Foreground(p.Color("#89b4fa"))
	fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", count, dest)
}
