// Package cli implements the checkmate command line interface.
package cli

import (
	"embed"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tshehlatshego/checkmate/internal/config"
)

var (
	cfgFile      string
	staticAssets embed.FS
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "checkmate",
	Short: "Checkmate - AI-assisted fact checking service",
	Long: `Checkmate accepts a textual claim, gathers web search results,
asks a generative-AI provider for a verdict, and returns a normalized
verdict with credibility score and supporting sources.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("checkmate v1.0.0")
	},
}

// initConfigCmd writes a sample configuration file.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.GenerateSample(cfgFile); err != nil {
			return err
		}
		cmd.Printf("Wrote sample configuration to %s\n", cfgFile)
		return nil
	},
}

// Execute runs the root command.
func Execute(staticFS embed.FS) error {
	staticAssets = staticFS
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig loads .env, parses the config file, and configures logging.
// Missing credentials fail here, before any server or pipeline starts.
func loadConfig() (*config.Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.Logging)
	return cfg, nil
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
