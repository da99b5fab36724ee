package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/markusressel/hwtemp/cmd/global"
	"github.com/markusressel/hwtemp/internal"
	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/markusressel/hwtemp/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"gopkg.in/yaml.v3"
)

var outputFormat string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect and read all temperature sensors",
	Long:  `Discovers all temperature sensors and prints their current readings`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect()
	},
}

func init() {
	addOutputFlag(detectCmd)
	rootCmd.AddCommand(detectCmd)
}

// addOutputFlag registers the output format flag of the detect output on the given command.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", global.OutputTable, "Output format, one of: table | json | yaml")
}

func runDetect() error {
	if outputFormat != global.OutputTable {
		// keep stdout machine readable
		ui.Silence()
	}

	if err := configuration.Load(); err != nil {
		return err
	}

	probe := internal.NewProbe(configuration.CurrentConfig)
	results := probe.ReadAll(context.Background())

	switch outputFormat {
	case global.OutputJson:
		data, err := json.MarshalIndent(hwmon.Reports(results), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case global.OutputYaml:
		data, err := yaml.Marshal(hwmon.Reports(results))
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case global.OutputTable:
		return printTables(results)
	default:
		return fmt.Errorf("unsupported output format '%s', use one of: %s | %s | %s", outputFormat, global.OutputTable, global.OutputJson, global.OutputYaml)
	}
	return nil
}

// printTables prints one table per hwmon chip directory
func printTables(results []hwmon.Result) error {
	if len(results) <= 0 {
		ui.Warning("No temperature sensors found")
		return nil
	}

	tableConfig := &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}

	chips := map[string][]hwmon.Result{}
	for _, result := range results {
		dir := filepath.Dir(result.Base.String())
		chips[dir] = append(chips[dir], result)
	}

	for _, dir := range util.SortedKeys(chips) {
		chipResults := chips[dir]

		chipName := "N/A"
		var rows [][]string
		for _, result := range chipResults {
			_, sensorName := filepath.Split(result.Base.String())
			if result.Err != nil {
				ui.Warning("Cannot read sensor %s: %v", result.Base, result.Err)
				rows = append(rows, []string{sensorName, "", "N/A", "", ""})
				continue
			}

			reading := result.Reading
			chipName = reading.Name
			rows = append(rows, []string{
				sensorName,
				reading.DisplayLabel(""),
				formatTemperature(&reading.Value),
				formatTemperature(reading.High),
				formatTemperature(reading.Critical),
			})
		}

		ui.Printfln("> %s (%s)", chipName, dir)

		sensorTable := table.Table{
			Headers: []string{"Sensor", "Label", "Value", "High", "Crit"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		if err := sensorTable.WriteTable(&buf, tableConfig); err != nil {
			return fmt.Errorf("error printing table: %w", err)
		}
		ui.Printfln("%s", buf.String())
	}
	return nil
}

func formatTemperature(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.1f°C", *value)
}
