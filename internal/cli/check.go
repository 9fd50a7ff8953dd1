package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tshehlatshego/checkmate/internal/check"
	"github.com/tshehlatshego/checkmate/internal/database"
	"github.com/tshehlatshego/checkmate/internal/llm"
	"github.com/tshehlatshego/checkmate/internal/search"
)

// checkCmd fact-checks a single claim from the terminal.
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Fact-check a single claim and print the verdict",
	Args:  cobra.ExactArgs(1),
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

		result, err := engine.Check(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	},
}
