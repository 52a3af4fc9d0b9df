// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate runs a profile lookup end to end: it validates the person,
// checks credentials, builds the query, calls the searcher once, and filters
// the results into ranked candidate URLs.
package locate

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/profile-locator/internal/profile"
	"github.com/pdiddy/profile-locator/internal/search"
	"github.com/pdiddy/profile-locator/pkg/types"
)

// ErrMissingName is returned when the person has no usable full name.
var ErrMissingName = errors.New("full_name is required")

// ErrMissingCredentials is returned when the API key or engine ID is unset.
var ErrMissingCredentials = errors.New("missing GOOGLE_API_KEY or GOOGLE_CX environment variables")

// ErrNoSearcher is returned when the Locator was built without a searcher.
var ErrNoSearcher = errors.New("no search provider configured")

// ProviderError wraps a failure of the search provider call: transport
// errors, non-2xx responses and unparseable bodies.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("search provider failed: %v", e.Err)
	}
	return fmt.Sprintf("search provider %s failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsInputError reports whether err was caused by the request itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingName)
}

// IsConfigError reports whether err was caused by process configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrNoSearcher)
}

// IsProviderError reports whether err came from the search provider.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// Locator finds profile URLs for people. It holds no per-request state and
// is safe to share.
type Locator struct {
	cfg      types.LookupConfig
	searcher search.Searcher
}

// New creates a Locator that searches with s using cfg.
func New(cfg types.LookupConfig, s search.Searcher) *Locator {
	return &Locator{cfg: cfg, searcher: s}
}

// Mode returns the effective match mode.
func (l *Locator) Mode() types.MatchMode {
	if l.cfg.Mode == types.MatchLenient {
		return types.MatchLenient
	}
	return types.MatchStrict
}

// Validate checks the person and returns a trimmed copy.
func Validate(p types.PersonInput) (types.PersonInput, error) {
	p = p.Trimmed()
	if p.FullName == "" {
		return p, ErrMissingName
	}
	return p, nil
}

// Query validates p and returns the search query that Lookup would send.
// It never contacts the provider.
func (l *Locator) Query(p types.PersonInput) (string, error) {
	p, err := Validate(p)
	if err != nil {
		return "", err
	}
	return search.BuildQuery(p), nil
}

// CheckConfig returns a configuration error if a lookup cannot be attempted.
func (l *Locator) CheckConfig() error {
	if !l.cfg.Search.HasCredentials() {
		return ErrMissingCredentials
	}
	if l.searcher == nil {
		return ErrNoSearcher
	}
	return nil
}

// Lookup locates the profile of p. Input and configuration problems are
// reported before the provider is contacted. A successful search with no
// surviving candidates is not an error: it yields StatusNotFound.
func (l *Locator) Lookup(ctx context.Context, p types.PersonInput) (types.LookupResult, error) {
	log := zerolog.Ctx(ctx)

	p, err := Validate(p)
	if err != nil {
		return types.LookupResult{}, err
	}
	if err := l.CheckConfig(); err != nil {
		return types.LookupResult{}, err
	}

	query := search.BuildQuery(p)
	log.Debug().Str("query", query).Str("mode", string(l.Mode())).Msg("Built search query")

	results, err := l.searcher.Search(ctx, query, l.cfg.Search.ResultCount())
	if err != nil {
		log.Warn().Err(err).Str("provider", l.searcher.Name()).Msg("Search provider failed")
		return types.LookupResult{}, &ProviderError{Provider: l.searcher.Name(), Err: err}
	}

	candidates := profile.Candidates(l.Mode(), p, results)
	log.Debug().
		Int("results", len(results)).
		Int("candidates", len(candidates)).
		Msg("Filtered search results")

	return types.NewLookupResult(candidates), nil
}
