package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Store         StoreConfig         `toml:"store"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Admin         AdminConfig         `toml:"admin"`
	EmailJS       EmailJSConfig       `toml:"emailjs"`
	Kafka         KafkaConfig         `toml:"kafka"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	MaxUploadMB     int `toml:"max_upload_mb"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | sqlite3
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Path            string `toml:"path"` // файл базы для sqlite3
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// StoreConfig настройки хранилища бронирований
type StoreConfig struct {
	SessionKey string `toml:"session_key"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig общий пароль администратора
type AdminConfig struct {
	Password string `toml:"password"`
}

// EmailJSConfig настройки отправки писем
type EmailJSConfig struct {
	URL        string `toml:"url"`
	PublicKey  string `toml:"public_key"`
	ServiceID  string `toml:"service_id"`
	TemplateID string `toml:"template_id"`
	OwnerName  string `toml:"owner_name"`
	Timeout    int    `toml:"timeout"`
}

// KafkaConfig настройки публикации событий
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	Timeout int      `toml:"timeout"`
}

// NotificationsConfig общие настройки уведомлений
type NotificationsConfig struct {
	Timeout int `toml:"timeout"` // сколько секунд ждать шлюз уведомлений
}

// Load загружает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Admin.Password == "" {
		return errors.New("config: admin.password is required")
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("config: database.host and database.dbname are required for postgres")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("config: database.path is required for sqlite3")
		}
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}

	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("config: kafka.brokers and kafka.topic are required when kafka is enabled")
	}
	return nil
}

// DSN возвращает строку подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return fmt.Sprintf("%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", d.Path)
	}

	parts := []string{
		fmt.Sprintf("host=%s", d.Host),
		fmt.Sprintf("port=%d", d.Port),
		fmt.Sprintf("dbname=%s", d.DBName),
		fmt.Sprintf("sslmode=%s", d.SSLMode),
	}
	if d.User != "" {
		parts = append(parts, fmt.Sprintf("user=%s", d.User))
	}
	if d.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", d.Password))
	}
	return strings.Join(parts, " ")
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, DefaultHTTPPort)
	setDefault(&c.Server.ReadTimeout, DefaultReadTimeout)
	setDefault(&c.Server.WriteTimeout, DefaultWriteTimeout)
	setDefault(&c.Server.IdleTimeout, DefaultIdleTimeout)
	setDefault(&c.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&c.Server.MaxUploadMB, DefaultMaxUploadMB)

	setDefaultStr(&c.Database.Driver, DriverPostgres)
	setDefault(&c.Database.Port, DefaultPostgresPort)
	setDefaultStr(&c.Database.SSLMode, DefaultSSLMode)
	setDefault(&c.Database.MaxOpenConns, DefaultMaxOpenConns)
	setDefault(&c.Database.MaxIdleConns, DefaultMaxIdleConns)
	setDefault(&c.Database.ConnMaxLifetime, DefaultConnMaxLifetime)

	setDefaultStr(&c.Store.SessionKey, DefaultSessionKey)

	setDefaultStr(&c.Logs.Level, DefaultLogLevel)

	setDefaultStr(&c.Metrics.Path, DefaultMetricsPath)
	setDefaultStr(&c.Metrics.ServiceName, DefaultServiceName)

	setDefaultStr(&c.EmailJS.OwnerName, DefaultOwnerName)
	setDefault(&c.EmailJS.Timeout, DefaultEmailJSTimeout)

	setDefault(&c.Kafka.Timeout, DefaultKafkaTimeout)

	setDefault(&c.Notifications.Timeout, DefaultNotificationTimeout)
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setDefaultStr(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
