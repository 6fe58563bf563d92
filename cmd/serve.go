package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"clinical-trial-system/cmd/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server.Init()
		return server.Run(ctx)
	},
}
