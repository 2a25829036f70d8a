package conf

import (
	"path/filepath"
)

type Database struct {
	Type        string `json:"type" env:"DB_TYPE"`
	Host        string `json:"host" env:"DB_HOST"`
	Port        int    `json:"port" env:"DB_PORT"`
	User        string `json:"user" env:"DB_USER"`
	Password    string `json:"password" env:"DB_PASS"`
	Name        string `json:"name" env:"DB_NAME"`
	DBFile      string `json:"db_file" env:"DB_FILE"`
	TablePrefix string `json:"table_prefix" env:"DB_TABLE_PREFIX"`
	SSLMode     string `json:"ssl_mode" env:"DB_SSL_MODE"`
	DSN         string `json:"dsn" env:"DSN"`
}

type Scheme struct {
	Address  string `json:"address" env:"ADDR"`
	HttpPort int    `json:"http_port" env:"HTTP_PORT"`
}

type LogConfig struct {
	Enable     bool   `json:"enable" env:"LOG_ENABLE"`
	Name       string `json:"name" env:"LOG_NAME"`
	MaxSize    int    `json:"max_size" env:"LOG_MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"LOG_MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"LOG_MAX_AGE"`
	Compress   bool   `json:"compress" env:"LOG_COMPRESS"`
}

type Cors struct {
	AllowOrigins []string `json:"allow_origins"`
	AllowMethods []string `json:"allow_methods"`
	AllowHeaders []string `json:"allow_headers"`
}

type Config struct {
	Scheme              Scheme    `json:"scheme"`
	Database            Database  `json:"database"`
	Log                 LogConfig `json:"log"`
	Cors                Cors      `json:"cors"`
	ThemeDir            string    `json:"theme_dir" env:"THEME_DIR"`
	ProductionEnv       bool      `json:"production_env" env:"PRODUCTION_ENV"`
	DocDisabled         bool      `json:"doc_disabled" env:"DOC_DISABLED"`
	LastLaunchedVersion string    `json:"last_launched_version"`
}

// DefaultPort is used when the configured http port is unset.
const DefaultPort = 8080

func DefaultConfig(dataDir string) *Config {
	logPath := filepath.Join(dataDir, "log/log.log")
	dbPath := filepath.Join(dataDir, "data.db")
	themeDir := filepath.Join(dataDir, "themes")
	return &Config{
		Scheme: Scheme{
			Address:  "0.0.0.0",
			HttpPort: DefaultPort,
		},
		Database: Database{
			Type:        "sqlite3",
			Port:        0,
			TablePrefix: "blog_",
			DBFile:      dbPath,
		},
		Log: LogConfig{
			Enable:     true,
			Name:       logPath,
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
		Cors: Cors{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"*"},
			AllowHeaders: []string{"*"},
		},
		ThemeDir:      themeDir,
		ProductionEnv: true,
		DocDisabled:   true,
	}
}

// Port returns the configured http port, DefaultPort when unset.
func (c *Config) Port() int {
	if c == nil || c.Scheme.HttpPort <= 0 {
		return DefaultPort
	}
	return c.Scheme.HttpPort
}
