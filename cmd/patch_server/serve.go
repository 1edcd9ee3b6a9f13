package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/patch-matchmaker/internal/config"
	"github.com/jonathan/patch-matchmaker/internal/server"
)

var (
	servePort      int
	serveConfig    string
	serveDisableAI bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for onboarding, projects, matching, and teams.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveDisableAI, "disable-ai", false, "Use only heuristic match explanations")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	fileCfg := config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		fileCfg = *loaded
		if err := fileCfg.Validate(); err != nil {
			return err
		}
	}

	cfg := resolveServeConfig(fileCfg, servePort, cmd.Flags().Changed("port"), config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		DisableAI:   serveDisableAI || cfg.DisableAI,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig layers configuration sources: an explicitly set
// --port beats the config file, which beats the flag default and the
// environment.
func resolveServeConfig(fileCfg config.Config, port int, portFlagSet bool, env config.Config) config.Config {
	env.Port = port
	cfg := fileCfg.MergeWithDefaults(env)
	if portFlagSet {
		cfg.Port = port
	}
	return cfg
}
