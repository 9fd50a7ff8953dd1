package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tshehlatshego/checkmate/internal/api"
	"github.com/tshehlatshego/checkmate/internal/check"
	"github.com/tshehlatshego/checkmate/internal/database"
	"github.com/tshehlatshego/checkmate/internal/llm"
	"github.com/tshehlatshego/checkmate/internal/search"
)

// serveCmd runs the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the fact-checking HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := database.NewSQLiteStore(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()

		provider, err := llm.NewProvider(&cfg.LLM)
		if err != nil {
			return err
		}

		searchClient, err := search.NewClient(&cfg.Search)
		if err != nil {
			return err
		}

		engine := check.NewEngine(provider, searchClient, store, cfg.Search.MaxResults)
		router := api.NewRouter(cfg, engine, store, staticAssets)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().
				Int("port", cfg.Server.Port).
				Str("llm", provider.Name()).
				Str("search", searchClient.Name()).
				Msg("Server starting")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Info().Str("signal", sig.String()).Msg("Shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
