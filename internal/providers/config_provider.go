package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"perfumefinder/internal/structures"
	"strings"
)

const DefaultNamespace = "perfume-finder-storage"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("persistence.namespace", DefaultNamespace)
	viper.SetDefault("persistence.driver", "file")

	viper.BindEnv("logger.level", "PF_LOG_LEVEL")
	viper.BindEnv("persistence.driver", "PF_PERSISTENCE_DRIVER")
	viper.BindEnv("persistence.path", "PF_PERSISTENCE_PATH")
	viper.BindEnv("cache.enabled", "PF_CACHE_ENABLED")
	viper.BindEnv("cache.size", "PF_CACHE_SIZE")
	viper.BindEnv("catalogue.path", "PF_CATALOGUE_PATH")
	viper.BindEnv("alerts.refreshInterval", "PF_ALERTS_REFRESH_INTERVAL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "PerfumeFinder"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
