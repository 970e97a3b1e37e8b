package providers

import (
	"os"
	"path/filepath"
	"perfumefinder/internal/structures"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
webServer:
  host: "127.0.0.1"
  port: 8090
trust:
  trustedDomains:
    - notino
    - sephora
persistence:
  driver: "sqlite"
  path: "/tmp/pf"
logger:
  level: "info"
  mode: 0644
  dir: "/tmp"
cache:
  enabled: true
  size: 4
  ttl: 30s
metrics:
  enabled: false
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	t.Cleanup(viper.Reset)
	return path
}

func TestNewConfigProvider_ReadsYaml(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "PerfumeFinder", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 8090, conf.WebServer.Port)
	assert.Equal(t, []string{"notino", "sephora"}, conf.Trust.TrustedDomains)
	assert.Equal(t, "sqlite", conf.Persistence.Driver)
	assert.Equal(t, DefaultNamespace, conf.Persistence.Namespace)
	assert.Equal(t, 30*time.Second, conf.Cache.TTL)
	assert.Equal(t, 4, conf.Cache.Size)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("PF_PERSISTENCE_DRIVER", "leveldb")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "leveldb", conf.Persistence.Driver)
}

func TestNewConfigProvider_InvalidSection(t *testing.T) {
	path := writeConfig(t, sampleConfig+"\n")
	t.Setenv("PF_LOG_LEVEL", "chatty")

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
