package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceHTTP  = "http"
	SourceFile  = "file"
	SourceMySQL = "mysql"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Source   SourceConfig   `mapstructure:"source"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	View     ViewConfig     `mapstructure:"view"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SourceConfig struct {
	Kind string     `mapstructure:"kind"`
	HTTP HTTPSource `mapstructure:"http"`
	File FileSource `mapstructure:"file"`
}

type HTTPSource struct {
	URL string `mapstructure:"url"`
	// Zero means the request waits as long as the transport does.
	Timeout time.Duration `mapstructure:"timeout"`
}

type FileSource struct {
	Path string `mapstructure:"path"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ViewConfig struct {
	DarkMode bool `mapstructure:"dark_mode"`
}

// Load reads configuration from defaults, an optional YAML file, a .env file
// in the working directory and CATALOG_* environment variables, in increasing
// order of precedence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("source.kind", SourceHTTP)
	v.SetDefault("source.http.url", "https://fakestoreapi.com/products")
	v.SetDefault("source.http.timeout", "0s")
	v.SetDefault("source.file.path", "products.yaml")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "catalog")
	v.SetDefault("database.password", "secret")
	v.SetDefault("database.name", "catalog")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "5m")

	v.SetDefault("log.level", "info")
	v.SetDefault("view.dark_mode", false)
}

func (c *Config) validate() error {
	switch c.Source.Kind {
	case SourceHTTP:
		if c.Source.HTTP.URL == "" {
			return fmt.Errorf("source.http.url is required for source kind %q", c.Source.Kind)
		}
	case SourceFile:
		if c.Source.File.Path == "" {
			return fmt.Errorf("source.file.path is required for source kind %q", c.Source.Kind)
		}
	case SourceMySQL:
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}

	return nil
}
