// Command picolimbo runs the limbo server: load config, build the
// ServerState it describes, and accept connections until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-mclib/picolimbo/config"
)

func main() {
	root := serveCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "picolimbo",
		Short: "A minimal Minecraft limbo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.toml", "path to the TOML configuration file")
	return cmd
}

func serve(configPath string) error {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		logrus.WithError(err).Error("failed to load configuration")
		return err
	}

	state, err := config.BuildServerState(cfg)
	if err != nil {
		logrus.WithError(err).Error("invalid configuration")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := state.Serve(ctx); err != nil {
		state.Log.WithError(err).Error("server stopped")
		return err
	}
	return nil
}
