// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-locator CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-locator/internal/secrets"
	"github.com/pdiddy/profile-locator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	secretsDir  = ".secrets/"
	defaultAddr = ":8080"
)

// rootCmd is the base command for the profile-locator CLI.
var rootCmd = &cobra.Command{
	Use:   "profile-locator",
	Short: "Find a person's public LinkedIn profile URL",
	Long: `profile-locator searches Google Programmable Search for a person's public
LinkedIn profile. It builds a site-restricted query from the person's name and
optional details (email, location, role, company or university), filters the
results by name and URL shape, and reports the canonical profile URL.

Credentials come from GOOGLE_API_KEY and GOOGLE_CX (environment, .env file,
config file, or the .secrets/ directory).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		logger, err := newLogger(level, jsonLogs, os.Stderr)
		if err != nil {
			return err
		}
		cmd.SetContext(logger.WithContext(cmd.Context()))

		s, err := secrets.Load(cmd.Context(), secretsDir)
		if err != nil {
			return err
		}
		for key, v := range secrets.Defaults(s) {
			viper.SetDefault(key, v)
		}
		if len(s) > 0 {
			zerolog.Ctx(cmd.Context()).Debug().Strs("keys", secrets.Names(s)).Msg("Loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./profile-locator.yaml or ~/.config/profile-locator/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "write logs as JSON instead of console text")
}

func initConfig() {
	// Existing environment variables take precedence over .env entries.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-locator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-locator"))
		}
	}

	viper.SetEnvPrefix("PROFILE_LOCATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("search.api_key", "GOOGLE_API_KEY", "PROFILE_LOCATOR_SEARCH_API_KEY")
	_ = viper.BindEnv("search.engine_id", "GOOGLE_CX", "PROFILE_LOCATOR_SEARCH_ENGINE_ID")

	viper.SetDefault("search.max_results", types.DefaultMaxResults)
	viper.SetDefault("search.timeout", types.DefaultTimeout)
	viper.SetDefault("search.user_agent", "profile-locator/"+version)
	viper.SetDefault("lookup.mode", string(types.MatchStrict))
	viper.SetDefault("server.addr", defaultAddr)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
