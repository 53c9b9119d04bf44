package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYNEX_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "MYR", c.UI.Currency)
	require.Equal(t, 100, c.UI.CompactWidth)
	require.Equal(t, 50, c.Data.Transactions)
	require.Equal(t, 30, c.Data.Payouts)
	require.Equal(t, 20, c.Data.Settlements)
	require.Equal(t, 30, c.Data.Reports)
	require.Equal(t, ".", c.Export.Dir)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Metrics.Textfile)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
compact_width = 80

[data]
seed = 42
transactions = 10

[export]
dir = "/tmp/exports"
`), 0o600))
	t.Setenv("PAYNEX_CONFIG", path)
	t.Setenv("PAYNEX_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 80, c.UI.CompactWidth)
	require.Equal(t, int64(42), c.Data.Seed)
	require.Equal(t, 10, c.Data.Transactions)
	require.Equal(t, "/tmp/exports", c.Export.Dir)
	require.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("PAYNEX_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadCompactWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYNEX_CONFIG", "")
	t.Setenv("PAYNEX_UI_COMPACT_WIDTH", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNegativeCounts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYNEX_CONFIG", "")
	t.Setenv("PAYNEX_DATA_TRANSACTIONS", "-5")
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "data.transactions")
}

func TestLoadAcceptsZeroCounts(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PAYNEX_CONFIG", "")
	t.Setenv("PAYNEX_DATA_PAYOUTS", "0")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, 0, c.Data.Payouts)
}
