// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds profile-biased web search queries and sends them to
// a search provider.
package search

import (
	"context"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// Searcher runs a single web search. Implementations return results in the
// order the provider ranked them and never retry.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, count int) ([]types.SearchResult, error)
}
