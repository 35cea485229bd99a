package main

import (
	"github.com/project/librarysrv/config"
	"github.com/project/librarysrv/internal/app"
	"github.com/project/librarysrv/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("library: %s", err)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "library",
		Short:         "Line protocol server for authors, books and publishers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd)
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the server (default)",
		RunE: func(*cobra.Command, []string) error {
			return serve(cmd)
		},
	})

	return cmd
}

// serve runs the server with the flags of the root command.
func serve(cmd *cobra.Command) error {
	cfg, err := config.NewConfig(cmd.PersistentFlags())
	if err != nil {
		log.Fatalf("can not get application config: %s", err)
	}

	zapLogger, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatalf("can not initialize logger: %s", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	return app.Run(zapLogger, cfg)
}
