package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, BackendSheets, cfg.Store.Backend)
	assert.Equal(t, "Bills", cfg.WorksheetNames().Bills)
	assert.False(t, cfg.Store.InitEmptySheet)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
store:
  backend: postgres
db:
  host: db.internal
  port: "5432"
  user: crm
  name: crm
worksheets:
  products: Catalogue
`), 0o600))

	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("INIT_EMPTY_WORKSHEETS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "Catalogue", cfg.Worksheets.Products)
	assert.Equal(t, "Users", cfg.Worksheets.Users)
	assert.True(t, cfg.Store.InitEmptySheet)
	require.NoError(t, cfg.Validate())
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sheetcrm.yaml"), []byte("store:\n  backend: memory\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("INIT_EMPTY_WORKSHEETS", "maybe")
		_, err := Load("")
		assert.ErrorContains(t, err, "INIT_EMPTY_WORKSHEETS")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"sheets needs spreadsheet id", func(c *Config) {}, "SPREADSHEET_ID"},
		{"sheets needs credentials", func(c *Config) { c.Sheets.SpreadsheetID = "wb" }, "GOOGLE_CREDENTIALS_FILE"},
		{"sheets ok", func(c *Config) {
			c.Sheets.SpreadsheetID = "wb"
			c.Sheets.CredentialsFile = "creds.json"
		}, ""},
		{"postgres needs db", func(c *Config) { c.Store.Backend = BackendPostgres }, "DB_HOST"},
		{"memory ok", func(c *Config) { c.Store.Backend = BackendMemory }, ""},
		{"unknown backend", func(c *Config) { c.Store.Backend = "excel" }, "unknown STORE_BACKEND"},
		{"empty worksheet", func(c *Config) {
			c.Store.Backend = BackendMemory
			c.Worksheets.Bills = ""
		}, "worksheet names"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	dsn, err := DBConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}
