package providers

import (
	"perfumefinder/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			Driver:    "file",
			Path:      "/tmp/perfumefinder",
			Namespace: DefaultNamespace,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Trust: structures.TrustConfig{
			TrustedDomains: []string{"notino", "sephora"},
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Persistence.Driver = "redis"
	err := NewCnfValidator(c).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persistence")
}

func TestConfigValidator_AllDrivers(t *testing.T) {
	for _, driver := range []string{"file", "leveldb", "sqlite"} {
		c := validConfig()
		c.Persistence.Driver = driver
		assert.NoError(t, NewCnfValidator(c).Validate(), driver)
	}
}

func TestConfigValidator_EmptyNamespace(t *testing.T) {
	c := validConfig()
	c.Persistence.Namespace = ""
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_NoTrustedDomains(t *testing.T) {
	c := validConfig()
	c.Trust.TrustedDomains = nil
	err := NewCnfValidator(c).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "trust")
}

func TestConfigValidator_CacheEnabledWithoutSize(t *testing.T) {
	c := validConfig()
	c.Cache = structures.CacheConfig{Enabled: true, Size: 0}
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_AlertRefreshInterval(t *testing.T) {
	c := validConfig()
	c.Alerts.RefreshInterval = 500 * time.Millisecond
	assert.Error(t, NewCnfValidator(c).Validate())

	c.Alerts.RefreshInterval = 0
	assert.NoError(t, NewCnfValidator(c).Validate())

	c.Alerts.RefreshInterval = 10 * time.Minute
	assert.NoError(t, NewCnfValidator(c).Validate())
}
