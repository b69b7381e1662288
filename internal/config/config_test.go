package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
api:
  port: "9090"
  session_signing_key: secret
catalog:
  - name: Super Gold
    unit_price: 450
    total_count: 40
  - name: Bronze 2
    unit_price: 100
    total_count: 120
venue:
  grandstands:
    - name: Main straight
      category: Super Gold
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, "development", conf.API.Environment)
	assert.Equal(t, 2*time.Hour, conf.API.SessionTTL)
	assert.Equal(t, "debug", conf.Gin.Mode)
	assert.Equal(t, "ticket-desk.db", conf.SQLite.Path)
	assert.Equal(t, "Choose the proper grandstand!", conf.Venue.Title)
	assert.Equal(t, []CatalogEntry{
		{Name: "Super Gold", UnitPrice: 450, TotalCount: 40},
		{Name: "Bronze 2", UnitPrice: 100, TotalCount: 120},
	}, conf.Catalog)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_SESSION_SIGNING_KEY", "from-env")

	conf, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", conf.API.SessionSigningKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty catalog",
			content: "api:\n  session_signing_key: secret\n",
			wantErr: "at least one category",
		},
		{
			name:    "duplicate category",
			content: "api:\n  session_signing_key: secret\ncatalog:\n  - name: Gold 1\n    unit_price: 300\n  - name: Gold 1\n    unit_price: 300\n",
			wantErr: "declared twice",
		},
		{
			name:    "free tickets",
			content: "api:\n  session_signing_key: secret\ncatalog:\n  - name: Gold 1\n    unit_price: 0\n",
			wantErr: "invalid price",
		},
		{
			name:    "unknown grandstand category",
			content: "api:\n  session_signing_key: secret\ncatalog:\n  - name: Gold 1\n    unit_price: 300\nvenue:\n  grandstands:\n    - name: Hairpin\n      category: Bronze 9\n",
			wantErr: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DeskNeedsNoSigningKey(t *testing.T) {
	conf, err := Load(writeConfig(t, "catalog:\n  - name: Gold 1\n    unit_price: 300\n    total_count: 1\n"))
	require.NoError(t, err)

	err = conf.ValidateAPI()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session_signing_key")
}

func TestAppConfig_ValidateAPI(t *testing.T) {
	conf, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	require.NoError(t, conf.ValidateAPI())

	conf.API.SessionTTL = 0
	assert.ErrorContains(t, conf.ValidateAPI(), "session_ttl")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	conf := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DB: "tickets", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tickets sslmode=disable", conf.DSN())
}
