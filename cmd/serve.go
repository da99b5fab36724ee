package cmd

import (
	"fmt"

	"github.com/markusressel/hwtemp/internal"
	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve sensor readings over HTTP",
	Long: `Discovers all temperature sensors once and serves their readings
as JSON (/sensor/) and prometheus metrics (/metrics/). Sensors are read on every request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader()

		if err := configuration.Load(); err != nil {
			return err
		}
		return internal.RunServer(cmd.Context(), configuration.CurrentConfig)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("hw", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("temp", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("hwtemp")
	}
}
