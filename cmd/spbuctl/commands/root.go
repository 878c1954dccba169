package commands

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"spbu-monitor-backend/config"
	"spbu-monitor-backend/internal/export"
	"spbu-monitor-backend/internal/store"
	"spbu-monitor-backend/internal/upstream"
)

// app is the dependency graph shared by subcommands.
type app struct {
	cfg      *config.Config
	client   *upstream.Client
	store    store.Store
	exporter *export.Exporter
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		a          = &app{}
	)

	root := &cobra.Command{
		Use:          "spbuctl",
		Short:        "Inspect SPBU stations and export their PDF reports",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("CONFIG_PATH")
			}
			if configPath == "" {
				configPath = "./config/config.yaml"
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			config.SetupLogger(cfg.Log)
			// Logs go to stderr so that command output stays clean.
			log.SetOutput(cmd.ErrOrStderr())

			a.cfg = cfg
			a.client = upstream.NewClient(&cfg.Upstream)
			a.store = store.NewCachedStore(a.client, cfg.Cache.SnapshotTTL)
			a.exporter = export.NewExporter(a.store, cfg.Location(), cfg.WorkerPool.Size)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.client != nil {
				a.client.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config/config.yaml)")

	root.AddCommand(listCmd(a), exportCmd(a))
	return root
}
