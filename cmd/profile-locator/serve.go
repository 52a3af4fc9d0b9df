// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/pdiddy/profile-locator/internal/handler"
	"github.com/pdiddy/profile-locator/internal/locate"
	"github.com/pdiddy/profile-locator/internal/search"
	"github.com/pdiddy/profile-locator/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups over HTTP",
	Long: `Serve exposes lookups as a JSON HTTP API:

  POST /lookup   body {"full_name": "...", "email": "...", "location": "...",
                       "title_or_role": "...", "company_or_university": "..."}
  GET  /lookup   the same fields as query parameters
  GET  /healthz  liveness probe

Responses are 200 with the lookup result, 400 when full_name is missing, and
500 for configuration or search provider errors.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Bool("lenient", false, "keep any profile link without checking the result title")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := lookupConfig(cmd)
	if err != nil {
		return err
	}
	srvCfg := serverConfig(cmd)
	log := *zerolog.Ctx(cmd.Context())

	if !cfg.Search.HasCredentials() {
		log.Warn().Msg("GOOGLE_API_KEY or GOOGLE_CX is not set; lookups will fail until configured")
	}

	app := newServerApp(cfg, srvCfg, log)
	if err := app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	select {
	case sig := <-app.Wait():
		log.Info().Stringer("signal", sig.Signal).Msg("Shutting down")
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	return app.Stop(stopCtx)
}

// newServerApp assembles the server from its parts.
func newServerApp(cfg types.LookupConfig, srvCfg types.ServerConfig, log zerolog.Logger, opts ...fx.Option) *fx.App {
	base := []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg, srvCfg, log),
		fx.Provide(
			newSearcher,
			locate.New,
			handler.New,
			newHTTPServer,
		),
		fx.Invoke(func(*http.Server) {}),
	}
	if srvCfg.ShutdownTimeout > 0 {
		base = append(base, fx.StopTimeout(srvCfg.ShutdownTimeout))
	}
	return fx.New(append(base, opts...)...)
}

func newSearcher(cfg types.LookupConfig) (search.Searcher, error) {
	s, err := search.NewGoogleSearcher(context.Background(), cfg.Search)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newHTTPServer binds the handler routes to srvCfg.Addr for the lifetime of
// the app.
func newHTTPServer(lc fx.Lifecycle, srvCfg types.ServerConfig, h *handler.Handler, log zerolog.Logger) *http.Server {
	srv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: h.Routes(log),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", srv.Addr, err)
			}
			log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}
