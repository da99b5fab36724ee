package config

import (
	"fmt"

	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the effective configuration, including defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Silence()

		if err := configuration.Load(); err != nil {
			return err
		}

		data, err := yaml.Marshal(configuration.CurrentConfig)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	Command.AddCommand(showCmd)
}
