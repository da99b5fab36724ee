package configuration

import (
	"errors"
	"fmt"

	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/markusressel/hwtemp/internal/util"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	err := validatePatterns(config)
	if err != nil {
		return err
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("readTimeout must be > 0, was: %v", config.ReadTimeout)
	}
	if config.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, was: %d", config.Concurrency)
	}

	return validateApi(config)
}

func validatePatterns(config *Configuration) error {
	if len(config.Patterns) <= 0 {
		return errors.New("no sensor patterns configured")
	}

	var seen []string
	for _, pattern := range config.Patterns {
		if err := hwmon.ValidatePattern(pattern); err != nil {
			return fmt.Errorf("invalid sensor pattern '%s': %w", pattern, err)
		}
		if util.ContainsString(seen, pattern) {
			ui.Warning("Duplicate sensor pattern: %s", pattern)
		}
		seen = append(seen, pattern)
	}
	return nil
}

func validateApi(config *Configuration) error {
	if !config.Api.Enabled {
		return nil
	}
	if config.Api.Port <= 0 || config.Api.Port > 65535 {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	return nil
}
