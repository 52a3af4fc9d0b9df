// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-locator/internal/locate"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Look up every person listed in a YAML file",
	Long: `Batch reads a YAML file with a top-level "people" list and runs one lookup
per person, in order. A failed lookup is recorded and the batch continues.
Missing credentials abort the batch before any search is made.

Example people file:

  people:
    - full_name: Ronen Siman Tov
      company_or_university: IBM
      title_or_role: CTO
    - full_name: Jane Doe
      location: Paris`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("file", "", "YAML file listing the people to look up (required)")
	batchCmd.Flags().String("out", "", "write all results to this YAML file")
	addLookupFlags(batchCmd)
	batchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")

	people, err := locate.ReadPeopleFile(file)
	if err != nil {
		return err
	}

	cfg, err := lookupConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := newLocator(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	rf, err := loc.LookupAll(cmd.Context(), people)
	if err != nil {
		return err
	}

	if out != "" {
		if err := locate.WriteResultsFile(out, rf); err != nil {
			return err
		}
		zerolog.Ctx(cmd.Context()).Info().Str("path", out).Msg("Wrote results file")
	}

	if err := locate.Format(format, rf, cmd.OutOrStdout()); err != nil {
		return err
	}
	if rf.Summary.Failed > 0 {
		return fmt.Errorf("%d lookup(s) failed", rf.Summary.Failed)
	}
	return nil
}
