// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// newLogger builds the process logger. Console output is the default; JSON
// is meant for log collectors.
func newLogger(level string, jsonOut bool, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if !jsonOut {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// lookupConfig resolves lookup settings from viper, then applies the
// --max-results and --lenient flags when cmd defines and sets them.
func lookupConfig(cmd *cobra.Command) (types.LookupConfig, error) {
	cfg := types.LookupConfig{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			APIKey:     viper.GetString("search.api_key"),
			EngineID:   viper.GetString("search.engine_id"),
			Endpoint:   viper.GetString("search.endpoint"),
			MaxResults: viper.GetInt("search.max_results"),
		},
		Mode: types.MatchMode(viper.GetString("lookup.mode")),
	}

	if f := cmd.Flags().Lookup("max-results"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("max-results")
		cfg.Search.MaxResults = n
	}
	if f := cmd.Flags().Lookup("lenient"); f != nil && f.Changed {
		lenient, _ := cmd.Flags().GetBool("lenient")
		cfg.Mode = types.MatchStrict
		if lenient {
			cfg.Mode = types.MatchLenient
		}
	}

	switch cfg.Mode {
	case "", types.MatchStrict, types.MatchLenient:
	default:
		return cfg, fmt.Errorf("invalid lookup.mode %q: use strict or lenient", cfg.Mode)
	}
	cfg.Search.MaxResults = types.ClampResultCount(cfg.Search.MaxResults)
	return cfg, nil
}

// serverConfig resolves HTTP server settings from viper and the --addr flag.
func serverConfig(cmd *cobra.Command) types.ServerConfig {
	cfg := types.ServerConfig{
		Addr:            viper.GetString("server.addr"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	return cfg
}
