package config

// Драйверы базы данных
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Значения по умолчанию
const (
	DefaultHTTPPort        = 8080
	DefaultReadTimeout     = 15
	DefaultWriteTimeout    = 15
	DefaultIdleTimeout     = 60
	DefaultShutdownTimeout = 10
	DefaultMaxUploadMB     = 10

	DefaultPostgresPort    = 5432
	DefaultSSLMode         = "disable"
	DefaultMaxOpenConns    = 5
	DefaultMaxIdleConns    = 2
	DefaultConnMaxLifetime = 300

	DefaultSessionKey = "sommerhusBookings"

	DefaultLogLevel = "info"

	DefaultMetricsPath = "/metrics"
	DefaultServiceName = "sommerhus_booking"

	DefaultOwnerName      = "Ulla og Eric"
	DefaultEmailJSTimeout = 10

	DefaultKafkaTimeout = 5

	DefaultNotificationTimeout = 15
)
