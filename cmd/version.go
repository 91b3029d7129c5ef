package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/kedare/dryspot/internal/output"
	"github.com/kedare/dryspot/internal/version"
	"github.com/spf13/cobra"
)

var versionOutputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build metadata for this binary",
	Long:  "Display the version, commit, build date, platform and Go version embedded in the binary.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := validateFormat(versionOutputFormat)
		if err != nil {
			return err
		}

		info := version.Get()

		if format == output.FormatJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(info)
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), info.String())

		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionOutputFormat, "output", "o", output.FormatText, "Output format: text, json")
	rootCmd.Version = version.Get().Short()
}
