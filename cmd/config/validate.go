package config

import (
	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// note: config file path parameter comes from the root command (-c)
		configPath, err := configuration.DetectAndReadConfigFile()
		if err != nil {
			ui.Error("%v", err)
			return err
		}
		if len(configPath) > 0 {
			ui.Info("Using configuration file at: %s", configPath)
		} else {
			ui.Info("No configuration file found, validating defaults")
		}
		configuration.LoadConfig()

		if err = configuration.Validate(); err != nil {
			ui.Error("Validation failed: %v", err)
			return err
		}

		ui.Success("Config looks good! :)")
		return nil
	},
}

func init() {
	Command.AddCommand(validateCmd)
}
