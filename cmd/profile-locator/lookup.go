// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-locator/internal/locate"
	"github.com/pdiddy/profile-locator/internal/search"
	"github.com/pdiddy/profile-locator/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [full name...]",
	Short: "Find the LinkedIn profile URL of one person",
	Long: `Lookup runs one site-restricted Google search for the person and prints
the best-matching canonical profile URL followed by every candidate.

The name comes from --name or from the positional arguments joined with
spaces. Use --print-query to see the search query without calling Google.`,
	Example: `  profile-locator lookup "Ronen Siman Tov" --company IBM --title CTO
  profile-locator lookup --name "Jane Doe" --location Paris --format json`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("name", "", "full name of the person")
	lookupCmd.Flags().String("email", "", "email address")
	lookupCmd.Flags().String("location", "", "city, region or country")
	lookupCmd.Flags().String("title", "", "job title or role")
	lookupCmd.Flags().String("company", "", "company or university")
	addLookupFlags(lookupCmd)
	lookupCmd.Flags().Bool("print-query", false, "print the search query and exit without searching")

	rootCmd.AddCommand(lookupCmd)
}

// addLookupFlags registers the flags shared by commands that run lookups.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-results", 0, fmt.Sprintf("results requested per search, 1-%d (default %d)", types.ProviderMaxResults, types.DefaultMaxResults))
	cmd.Flags().Bool("lenient", false, "keep any profile link without checking the result title")
	cmd.Flags().String("format", locate.FormatTable, "output format: table, json or yaml")
}

func runLookup(cmd *cobra.Command, args []string) error {
	p := personFromFlags(cmd, args)

	cfg, err := lookupConfig(cmd)
	if err != nil {
		return err
	}

	if printQuery, _ := cmd.Flags().GetBool("print-query"); printQuery {
		q, err := locate.New(cfg, nil).Query(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), q)
		return nil
	}

	loc, err := newLocator(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	res, err := loc.Lookup(cmd.Context(), p)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return locate.Format(format, res, cmd.OutOrStdout())
}

// personFromFlags reads the person from flags; positional arguments supply
// the name when --name is not set.
func personFromFlags(cmd *cobra.Command, args []string) types.PersonInput {
	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.Join(args, " ")
	}
	email, _ := cmd.Flags().GetString("email")
	location, _ := cmd.Flags().GetString("location")
	title, _ := cmd.Flags().GetString("title")
	company, _ := cmd.Flags().GetString("company")

	return types.PersonInput{
		FullName:            name,
		Email:               email,
		Location:            location,
		TitleOrRole:         title,
		CompanyOrUniversity: company,
	}
}

// newLocator wires the Google searcher into a Locator.
func newLocator(ctx context.Context, cfg types.LookupConfig) (*locate.Locator, error) {
	s, err := search.NewGoogleSearcher(ctx, cfg.Search)
	if err != nil {
		return nil, err
	}
	return locate.New(cfg, s), nil
}
