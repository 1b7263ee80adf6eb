package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"notifier/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var (
		addr   string
		replay bool
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the introspection API (/policy, /stats, /notifications, /metrics)",
		Example: "  notifier serve --addr :8080 --demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				opts.cfg.Addr = addr
			}
			a, err := opts.newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			cfg := a.Config()
			httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders)
			httpapi.SetDefaultLogLevel(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if replay {
				if err := a.Demo(); err != nil {
					return err
				}
			}
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			srv := &http.Server{Handler: httpapi.NewMux(a), ReadHeaderTimeout: 10 * time.Second}

			errc := make(chan error, 1)
			go func() { errc <- srv.Serve(ln) }()
			a.SetReady(true)
			opts.logger.Info().Str("addr", ln.Addr().String()).Strs("sinks", cfg.Sinks).Msg("notifier listening")

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			a.SetReady(false)
			opts.logger.Info().Msg("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from config or :8080)")
	cmd.Flags().BoolVar(&replay, "demo", false, "Replay the demo catalog before serving")
	return cmd
}
