package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dm/esdash/internal/api"
	"github.com/dm/esdash/internal/client"
	"github.com/dm/esdash/internal/config"
	"github.com/dm/esdash/internal/logging"
	"github.com/dm/esdash/internal/transport"
	"github.com/dm/esdash/internal/tui"
)

var (
	configPath string
	logFile    string
	debug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "esdash",
		Short:        "esdash — terminal dashboard for Elasticsearch clusters",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default ~/.config/esdash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(resolveConfigPath(configPath))
	if err != nil {
		return err
	}

	path := cfg.LogFile
	if logFile != "" {
		path = logFile
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log, closeLog, err := logging.Setup(path, level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	clients, err := buildClients(cfg)
	if err != nil {
		return err
	}

	// Best-effort reachability check so obvious misconfiguration surfaces
	// before the terminal switches to the alternate screen. An unreachable
	// cluster is logged, not fatal: the dashboard still starts and the
	// failure shows up in the transport history on first fetch.
	pingClusters(cmd.Context(), clients, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	dispatcher := api.NewDispatcher(clients, log)
	controller := transport.NewController(dispatcher, log)
	controller.Start(ctx)

	app := tui.NewApp(controller, cfg.ClusterNames(), log)
	program := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("esdash starting", "clusters", len(clients))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// resolveConfigPath prefers the --config flag, falling back to the default
// location.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.DefaultPath()
}

// buildClients constructs one ES client per configured cluster, keyed by
// cluster name.
func buildClients(cfg config.Config) (map[string]client.ESClient, error) {
	clients := make(map[string]client.ESClient, len(cfg.Clusters))
	for _, cluster := range cfg.Clusters {
		c, err := client.NewDefaultClient(client.ClientConfig{
			BaseURL:            cluster.Endpoint,
			Username:           cluster.Username,
			Password:           cluster.Password,
			InsecureSkipVerify: cluster.Insecure,
			RequestTimeout:     time.Duration(cfg.RequestTimeout),
		})
		if err != nil {
			return nil, fmt.Errorf("cluster %q: %w", cluster.Name, err)
		}
		clients[cluster.Name] = c
	}
	return clients, nil
}

// pingClusters pings every cluster concurrently and logs the outcome.
func pingClusters(ctx context.Context, clients map[string]client.ESClient, log *slog.Logger) {
	g, gctx := errgroup.WithContext(ctx)
	for name, c := range clients {
		g.Go(func() error {
			if err := c.Ping(gctx); err != nil {
				log.Warn("cluster unreachable", "cluster", name, "error", err)
				return nil
			}
			log.Info("cluster reachable", "cluster", name)
			return nil
		})
	}
	_ = g.Wait()
}
