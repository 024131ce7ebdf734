package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartfarming/pulsemart/internal/server"
)

var servePort int

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

// lifecycle is the part of server.Server that runServer drives.
type lifecycle interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// runServer runs srv until ctx is cancelled or Start fails, and returns only
// after the graceful shutdown has finished draining.
func runServer(ctx context.Context, srv lifecycle, log zerolog.Logger, drain time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info().Msg("shutting down server")
		shutdownCtx, stop := context.WithTimeout(context.Background(), drain)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	err := srv.Start()
	cancel()
	<-done
	return err
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the listing page over HTTP",
	Long:  `Starts an HTTP server that renders the listing page on every request, together with its stylesheet and placeholder images.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}

		cat, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
		}, renderer, cat, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().Str("version", Version).Str("config", cfgFile).Msg("pulsemart starting")
		return runServer(ctx, srv, log, shutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
