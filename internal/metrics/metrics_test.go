package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.Navigated("payout")
	m.Navigated("payout")
	m.Exported("transactions", "csv")
	m.ValidationFailed("2")
	m.Submitted()
	m.Proceeded("MB2U")

	require.Equal(t, 2.0, testutil.ToFloat64(m.navigations.WithLabelValues("payout")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("transactions", "csv")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("2")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.submissions))
	require.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("MB2U")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.Navigated("dashboard")
	m.Exported("payouts", "xlsx")
	m.Submitted()
	require.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Exported("reports", "xlsx")
	path := filepath.Join(t.TempDir(), "paynex.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `paynex_table_exports_total{feature="reports",format="xlsx"} 1`))

	require.NoError(t, m.WriteTextfile(""))
}
