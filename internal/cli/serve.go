package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette generator as a JSON HTTP API",
	Long: `Serve the generator over HTTP for browser clients.

Endpoints:
  GET /healthz
  GET /api/v1/schemes
  GET /api/v1/palette?base=<hex>&scheme=<scheme>
  GET /api/v1/contrast?a=<hex>&b=<hex>
  GET /api/v1/palettes
  GET /api/v1/palettes/{name}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.ListenAddr
		}
		repo, err := openStore()
		if err != nil {
			return err
		}
		return server.New(addr, repo, newLogger()).Serve()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from HUEGEN_LISTEN_ADDR)")
}
