package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ingesting records, ranking matches and analyzing candidates.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides LISTEN_ADDR; default :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	eng, cleanup, err := newEngine(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(server.Config{Addr: addr}, eng)
	return srv.Start()
}
