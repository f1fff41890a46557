package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakemart/fakemart/internal/config"
	"github.com/fakemart/fakemart/internal/gen"
	"github.com/fakemart/fakemart/internal/server"
)

var (
	serveAddr string
	serveSeed uint64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve website events over HTTP",
	Long: `Start an HTTP server exposing the event generator:

  GET /api/health    - liveness check
  GET /api/event     - one fresh website event
  GET /api/events?n= - a batch of up to 1000 events`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (empty = config default)")
	serveCmd.Flags().Uint64Var(&serveSeed, "seed", 0, "Seed for the random sources (0 = time-based)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Fakemart event server starting...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveAddr == "" {
		serveAddr = cfg.Server.Addr
	}

	seed := serveSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	srv := server.NewServer(gen.New(seed))

	fmt.Printf("🌐 Listening on %s...\n", serveAddr)
	if err := srv.Start(serveAddr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
