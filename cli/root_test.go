package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxwatch/fxwatch/journal"
)

func clearOandaEnv(t *testing.T) {
	t.Helper()
	t.Setenv("OANDA_TOKEN", "")
	t.Setenv("OANDA_ACCOUNT_ID", "")
	t.Setenv("OANDA_ENV", "")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func openTradesServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/v3/accounts/101-004-1234567-001/openTrades":
			w.Write([]byte(`{
				"trades": [
					{
						"id": "1",
						"instrument": "EUR_USD",
						"currentUnits": "1000",
						"price": "1.0850",
						"unrealizedPL": "12.5",
						"takeProfitOrder": {"id": "101", "price": "1.0900"}
					}
				]
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTradesCommand(t *testing.T) {
	clearOandaEnv(t)
	server := openTradesServer(t)

	out, err := runCommand(t,
		"trades",
		"--base-url", server.URL,
		"--token", "test-token",
		"--account", "101-004-1234567-001",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Trade ID: 1")
	assert.Contains(t, out, "✓ Take Profit @ 1.09 (order 101)")
	assert.Contains(t, out, "✗ No Stop Loss set")
}

func TestTradesCommand_Journals(t *testing.T) {
	clearOandaEnv(t)
	server := openTradesServer(t)
	dbPath := filepath.Join(t.TempDir(), "fxwatch.sqlite")

	_, err := runCommand(t,
		"trades",
		"--base-url", server.URL,
		"--token", "test-token",
		"--account", "101-004-1234567-001",
		"--db", dbPath,
	)
	require.NoError(t, err)

	j, err := journal.NewSQLite(dbPath)
	require.NoError(t, err)
	defer j.Close()

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "101-004-1234567-001", runs[0].AccountID)
	assert.Equal(t, 1, runs[0].TradeCount)
}

func TestTradesCommand_MissingAccount(t *testing.T) {
	clearOandaEnv(t)

	_, err := runCommand(t, "trades", "--token", "test-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing account")
}

func TestTradesCommand_MissingToken(t *testing.T) {
	clearOandaEnv(t)

	_, err := runCommand(t, "trades", "--account", "101-004-1234567-001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing OANDA token")
}

func TestAccountCommand(t *testing.T) {
	clearOandaEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/accounts/101-004-1234567-001/summary", r.URL.Path)
		w.Write([]byte(`{
			"account": {
				"id": "101-004-1234567-001",
				"alias": "Primary",
				"currency": "USD",
				"balance": "100000.0000",
				"NAV": "100012.5000",
				"unrealizedPL": "12.5000",
				"marginUsed": "36.1700",
				"marginAvailable": "99976.3300",
				"openTradeCount": 1,
				"openPositionCount": 1,
				"pendingOrderCount": 0
			}
		}`))
	}))
	t.Cleanup(server.Close)

	out, err := runCommand(t,
		"account",
		"--base-url", server.URL,
		"--token", "test-token",
		"--account", "101-004-1234567-001",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Account: 101-004-1234567-001 (Primary)")
	assert.Contains(t, out, "Balance: 100000.0000")
	assert.Contains(t, out, "Open Trades: 1")
}

func TestVersionCommand(t *testing.T) {
	clearOandaEnv(t)

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fxwatch")
}

func TestConfigInitAndValidate(t *testing.T) {
	clearOandaEnv(t)
	path := filepath.Join(t.TempDir(), "fxwatch.yaml")

	out, err := runCommand(t, "config", "init", "-o", path, "--account", "101-004-1234567-001")
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = runCommand(t, "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
	assert.Contains(t, out, "101-004-1234567-001")
}

func TestJournalShowCommand(t *testing.T) {
	clearOandaEnv(t)
	server := openTradesServer(t)
	dbPath := filepath.Join(t.TempDir(), "fxwatch.sqlite")

	_, err := runCommand(t,
		"trades",
		"--base-url", server.URL,
		"--token", "test-token",
		"--account", "101-004-1234567-001",
		"--db", dbPath,
	)
	require.NoError(t, err)

	out, err := runCommand(t, "journal", "list", "--db", dbPath)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	j, err := journal.NewSQLite(dbPath)
	require.NoError(t, err)
	runs, err := j.ListRuns()
	require.NoError(t, err)
	j.Close()
	require.Len(t, runs, 1)

	out, err = runCommand(t, "journal", "show", runs[0].RunID, "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Trade ID: 1")
	assert.Contains(t, out, "✓ Take Profit @ 1.09 (order 101)")
}
