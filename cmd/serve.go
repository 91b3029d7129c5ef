package cmd

import (
	"github.com/kedare/dryspot/internal/destination"
	"github.com/kedare/dryspot/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dry destinations over HTTP",
	Long: `Start a read-only HTTP API:

  GET /healthz
  GET /api/attributions
  GET /api/destinations?location=<text>

The server stops gracefully on Ctrl+C. The listen address defaults to DRYSPOT_ADDR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := appConfig.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		return server.New(destination.NewStaticProvider(), addr).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", server.DefaultAddr, "Address to listen on")
}
