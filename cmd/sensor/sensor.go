package sensor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/spf13/cobra"
)

var (
	sensorPath string
	printJson  bool
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Read a single temperature sensor",
	Long: `Reads a single sensor, identified by its base path (f.ex. /sys/class/hwmon/hwmon0/temp1)
or the path of any of its attribute files (f.ex. /sys/class/hwmon/hwmon0/temp1_input).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.Silence()

		if err := configuration.Load(); err != nil {
			return err
		}

		base := resolveBase(sensorPath)
		reader := hwmon.NewReader(configuration.CurrentConfig.ReadTimeout, configuration.CurrentConfig.Concurrency)
		reading, err := reader.Read(context.Background(), base)
		if err != nil {
			return err
		}

		if printJson {
			data, err := json.MarshalIndent(reading, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%g\n", reading.Value)
		return nil
	},
}

func init() {
	Command.PersistentFlags().StringVarP(
		&sensorPath,
		"base", "b",
		"",
		"Sensor base path or attribute file path",
	)
	_ = Command.MarkPersistentFlagRequired("base")

	Command.Flags().BoolVarP(&printJson, "json", "j", false, "Print the full reading as JSON")
}

// resolveBase accepts both a base and the path of one of its attribute files
func resolveBase(path string) hwmon.Base {
	if base, ok := hwmon.BaseOf(path); ok {
		return base
	}
	return hwmon.Base(path)
}
