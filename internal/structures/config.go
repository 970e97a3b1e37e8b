package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Driver    string `yaml:"driver" validate:"required|in:file,leveldb,sqlite"`
	Path      string `yaml:"path" validate:"required|unixPath"`
	Namespace string `yaml:"namespace" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// CatalogueConfig points at the static dataset. An empty Path selects the
// dataset embedded in the binary.
type CatalogueConfig struct {
	Path string `yaml:"path"`
}

type TrustConfig struct {
	TrustedDomains []string `yaml:"trustedDomains" validate:"required"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

// AlertsConfig controls the background refresh of alert price snapshots.
// Zero disables it.
type AlertsConfig struct {
	RefreshInterval time.Duration `yaml:"refreshInterval"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server          `yaml:"webServer"`
	Catalogue   CatalogueConfig `yaml:"catalogue"`
	Trust       TrustConfig     `yaml:"trust"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Cache       CacheConfig     `yaml:"cache"`
	Alerts      AlertsConfig    `yaml:"alerts"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}
