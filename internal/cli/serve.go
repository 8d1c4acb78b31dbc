package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"inkwheel/internal/api"
	"inkwheel/internal/auth"
	"inkwheel/internal/config"
	"inkwheel/internal/palette"
	"inkwheel/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API and metrics servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if cfg.Env.IsDevelopment() {
			ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
		} else {
			ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		store, err := palette.NewBolt(cfg.StorePath)
		if err != nil {
			return err
		}
		defer store.Close()
		ui.LogStatus("info", "Palette store: "+cfg.StorePath)

		// Optional basic auth on mutating endpoints
		var userStore *auth.UserStore
		if cfg.UsersFile != "" {
			userStore, err = auth.NewUserStore(cfg.UsersFile)
			if err != nil {
				return err
			}
			ui.LogStatus("info", ui.Success("Auth enabled")+ui.Muted(" (%d users)", userStore.UserCount()))
		} else {
			ui.LogStatus("warning", "No users file configured, write endpoints are open")
		}

		// Create shutdown context
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		// Start metrics server with graceful shutdown
		metrics := api.NewMetricsServer(cfg.MetricsListen)
		metrics.Start()
		ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

		go func() {
			<-ctx.Done()
			ui.LogGracefulShutdown()
			metrics.Shutdown(context.Background())
		}()

		srv := api.NewServer(cfg, store, userStore)
		return srv.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
