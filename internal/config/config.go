package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

var (
	// ErrReadConfig ошибка чтения или разбора файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Directory  DirectoryConfig  `toml:"directory"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	// RunMigrations применять миграции при старте
	RunMigrations bool `toml:"run_migrations"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DirectoryConfig параметры клиента справочника клиентов/питомцев/сотрудников
type DirectoryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
	// CacheSize 0 отключает кэш
	CacheSize       int `toml:"cache_size"`
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

// CacheTTL время жизни записи кэша справочника
func (c DirectoryConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// SchedulingConfig бизнес-параметры записи на приём
type SchedulingConfig struct {
	MinDurationMinutes  int    `toml:"min_duration_minutes"`
	MaxDurationMinutes  int    `toml:"max_duration_minutes"`
	MaxTextLength       int    `toml:"max_text_length"`
	UpcomingWindowHours int    `toml:"upcoming_window_hours"`
	Timezone            string `toml:"timezone"`
	// Рабочие часы в формате HH:MM для расчёта свободных интервалов
	WorkdayStart    string `toml:"workday_start"`
	WorkdayEnd      string `toml:"workday_end"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
}

// UpcomingWindow окно для выборки ближайших приёмов
func (c SchedulingConfig) UpcomingWindow() time.Duration {
	return time.Duration(c.UpcomingWindowHours) * time.Hour
}

// Location часовой пояс клиники для границ "сегодня"
func (c SchedulingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// WorkingHours рабочий день сотрудников
func (c SchedulingConfig) WorkingHours() (domain.WorkingHours, error) {
	return domain.ParseWorkingHours(c.WorkdayStart, c.WorkdayEnd)
}

// Load читает конфигурацию из TOML файла, заполняет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "vetclinic"
	}

	if c.Directory.Timeout == 0 {
		c.Directory.Timeout = 5
	}
	if c.Directory.CacheTTLSeconds == 0 {
		c.Directory.CacheTTLSeconds = 60
	}

	if c.Scheduling.MinDurationMinutes == 0 {
		c.Scheduling.MinDurationMinutes = 15
	}
	if c.Scheduling.MaxDurationMinutes == 0 {
		c.Scheduling.MaxDurationMinutes = 480
	}
	if c.Scheduling.MaxTextLength == 0 {
		c.Scheduling.MaxTextLength = 1000
	}
	if c.Scheduling.UpcomingWindowHours == 0 {
		c.Scheduling.UpcomingWindowHours = 24
	}
	if c.Scheduling.WorkdayStart == "" {
		c.Scheduling.WorkdayStart = "09:00"
	}
	if c.Scheduling.WorkdayEnd == "" {
		c.Scheduling.WorkdayEnd = "18:00"
	}
	if c.Scheduling.SlotStepMinutes == 0 {
		c.Scheduling.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.Directory.URL == "" {
		return fmt.Errorf("%w: directory.url is required", ErrInvalidConfig)
	}
	if c.Directory.CacheSize < 0 {
		return fmt.Errorf("%w: directory.cache_size must not be negative", ErrInvalidConfig)
	}
	if c.Scheduling.MinDurationMinutes < 0 {
		return fmt.Errorf("%w: scheduling.min_duration_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Scheduling.MaxDurationMinutes < c.Scheduling.MinDurationMinutes {
		return fmt.Errorf("%w: scheduling.max_duration_minutes (%d) is less than min_duration_minutes (%d)",
			ErrInvalidConfig, c.Scheduling.MaxDurationMinutes, c.Scheduling.MinDurationMinutes)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Scheduling.WorkingHours(); err != nil {
		return fmt.Errorf("%w: scheduling working hours: %v", ErrInvalidConfig, err)
	}
	if c.Scheduling.SlotStepMinutes < 0 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must not be negative", ErrInvalidConfig)
	}
	return nil
}
