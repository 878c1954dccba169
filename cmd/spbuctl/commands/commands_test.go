package commands

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spbu-monitor-backend/config"
)

const stationsBody = `{"data":[{"id":7,"code_spbu":"34.123.01","address":"Jl. Merdeka No. 1"}]}`

const stationBody = `{"data":{
  "id": 7, "code_spbu": "34.123.01", "address": "Jl. Merdeka No. 1",
  "users": [{"id": 1, "name": "Budi", "role": "OPERATOR"}],
  "fuelSale": [{"id": 1, "tanggal": "2025-03-01T08:00:00Z", "shift": "Pagi", "jumlahLiter": 10, "totalHarga": "100000"}]
}}`

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/admin/spbus":
			fmt.Fprint(w, stationsBody)
		case "/admin/spbus/7":
			fmt.Fprint(w, stationBody)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"SPBU tidak ditemukan"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, baseURL, outDir string) string {
	t.Helper()
	t.Setenv(config.EnvAPIBaseURL, "")
	t.Setenv(config.EnvAPIToken, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf("upstream:\n  base_url: %q\nreport:\n  timezone: UTC\n  output_dir: %q\nlog:\n  level: error\n", baseURL, outDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	srv := newUpstream(t)
	cfgPath := writeConfig(t, srv.URL, t.TempDir())

	out, err := run(t, "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Kode SPBU")
	assert.Contains(t, out, "34.123.01")
	assert.Contains(t, out, "Jl. Merdeka No. 1")
}

func TestExportCommand(t *testing.T) {
	srv := newUpstream(t)
	outDir := t.TempDir()
	cfgPath := writeConfig(t, srv.URL, outDir)

	out, err := run(t, "--config", cfgPath, "export", "7")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(outDir, "Laporan_Lengkap_SPBU_34-123-01.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	other := t.TempDir()
	out, err = run(t, "--config", cfgPath, "export", "7", "--tab", "checklist", "--month", "3", "--year", "2025", "-o", other)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(other, "Laporan_Checklist_SPBU_34-123-01.pdf"), strings.TrimSpace(out))
}

func TestExportCommand_All(t *testing.T) {
	srv := newUpstream(t)
	outDir := filepath.Join(t.TempDir(), "batch")
	cfgPath := writeConfig(t, srv.URL, outDir)

	out, err := run(t, "--config", cfgPath, "export", "--all")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "Laporan_Lengkap_SPBU_34-123-01.pdf"), strings.TrimSpace(out))
}

func TestExportCommand_Errors(t *testing.T) {
	srv := newUpstream(t)
	cfgPath := writeConfig(t, srv.URL, t.TempDir())

	_, err := run(t, "--config", cfgPath, "export")
	assert.ErrorContains(t, err, "station ID required")

	_, err = run(t, "--config", cfgPath, "export", "abc")
	assert.ErrorContains(t, err, `invalid station ID "abc"`)

	_, err = run(t, "--config", cfgPath, "export", "7", "--tab", "bogus")
	assert.ErrorContains(t, err, "unknown tab")

	_, err = run(t, "--config", cfgPath, "export", "7", "--tab", "checklist", "--month", "13")
	assert.ErrorContains(t, err, "invalid month 13")

	_, err = run(t, "--config", cfgPath, "export", "99")
	assert.ErrorContains(t, err, "SPBU tidak ditemukan")

	_, err = run(t, "--config", cfgPath, "export", "--all", "7")
	assert.Error(t, err)
}

func TestPeriodFlags(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	p, err := periodFlags(0, 0, now)
	require.NoError(t, err)
	assert.Equal(t, "Juni 2025", p.String())

	p, err = periodFlags(2, 0, now)
	require.NoError(t, err)
	assert.Equal(t, "Februari 2025", p.String())
}
