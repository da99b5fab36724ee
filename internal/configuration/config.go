package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	// Patterns are the glob patterns used to discover temperature sensors
	Patterns []string `json:"patterns" yaml:"patterns"`

	ReadTimeout time.Duration `json:"readTimeout" yaml:"readTimeout"`
	Concurrency int           `json:"concurrency" yaml:"concurrency"`

	Api ApiConfig `json:"api" yaml:"api"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("hwtemp")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Warning("Couldn't detect home directory: %v", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/hwtemp/")
	}

	viper.SetEnvPrefix("hwtemp")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("patterns", hwmon.DefaultPatterns)
	viper.SetDefault("readTimeout", 2*time.Second)
	viper.SetDefault("concurrency", 0)

	viper.SetDefault("api.enabled", true)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9000)
}

// DetectAndReadConfigFile reads the config file, if there is one.
// Returns the path of the file used, or an empty string if none was found.
func DetectAndReadConfigFile() (string, error) {
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			ui.Debug("No configuration file found, using defaults")
			return "", nil
		}
		return "", fmt.Errorf("error reading config file: %w", err)
	}
	return viper.ConfigFileUsed(), nil
}

// LoadConfig decodes the current viper state into CurrentConfig.
func LoadConfig() {
	var config Configuration
	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

// Load reads the config file (if any), decodes and validates it.
func Load() error {
	configPath, err := DetectAndReadConfigFile()
	if err != nil {
		return err
	}
	if len(configPath) > 0 {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	LoadConfig()
	if err := Validate(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}
