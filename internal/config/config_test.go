package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
[server]
http_port = 9090
read_timeout = 5

[database]
driver = "postgres"
host = "localhost"
port = 5433
user = "sommerhus"
password = "secret"
dbname = "bookings"

[store]
session_key = "house-1"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true

[admin]
password = "sommerhus2025"

[emailjs]
public_key = "pk"
service_id = "svc"
template_id = "tpl"

[kafka]
enabled = true
brokers = ["localhost:9092"]
topic = "sommerhus.bookings"
`

func TestParse_Full(t *testing.T) {
	cfg, err := Parse(fullConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, "house-1", cfg.Store.SessionKey)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, "sommerhus2025", cfg.Admin.Password)
	assert.Equal(t, DefaultOwnerName, cfg.EmailJS.OwnerName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, DefaultNotificationTimeout, cfg.Notifications.Timeout)

	assert.Equal(t,
		"host=localhost port=5433 dbname=bookings sslmode=disable user=sommerhus password=secret",
		cfg.Database.DSN())
}

func TestParse_SQLiteDefaults(t *testing.T) {
	cfg, err := Parse(`
[database]
driver = "sqlite3"
path = "data/bookings.db"

[admin]
password = "pw"
`)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPPort, cfg.Server.HTTPPort)
	assert.Equal(t, DefaultSessionKey, cfg.Store.SessionKey)
	assert.Equal(t, "data/bookings.db?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", cfg.Database.DSN())
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing admin password",
			data: "[database]\ndriver = \"sqlite3\"\npath = \"x.db\"\n",
		},
		{
			name: "unknown driver",
			data: "[database]\ndriver = \"mysql\"\n[admin]\npassword = \"pw\"\n",
		},
		{
			name: "postgres without host",
			data: "[database]\ndriver = \"postgres\"\n[admin]\npassword = \"pw\"\n",
		},
		{
			name: "kafka without topic",
			data: "[database]\ndriver = \"sqlite3\"\npath = \"x.db\"\n[admin]\npassword = \"pw\"\n[kafka]\nenabled = true\nbrokers = [\"b:9092\"]\n",
		},
		{
			name: "broken toml",
			data: "[database\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
