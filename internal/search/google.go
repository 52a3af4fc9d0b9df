// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/pdiddy/profile-locator/internal/httputil"
	"github.com/pdiddy/profile-locator/pkg/types"
)

// googleAPIBase is the Programmable Search (Custom Search JSON API) base URL.
const googleAPIBase = "https://customsearch.googleapis.com/"

// GoogleSearcher queries the Google Programmable Search JSON API.
type GoogleSearcher struct {
	svc      *customsearch.Service
	apiKey   string
	engineID string
}

// GoogleOption configures a GoogleSearcher.
type GoogleOption func(*googleOptions)

type googleOptions struct {
	client *http.Client
}

// WithHTTPClient replaces the default HTTP client. The configured
// User-Agent is still applied.
func WithHTTPClient(c *http.Client) GoogleOption {
	return func(o *googleOptions) { o.client = c }
}

// NewGoogleSearcher creates a searcher bound to the credentials in cfg.
// Missing credentials are not rejected here; the caller decides how to
// report them before any request is made.
func NewGoogleSearcher(ctx context.Context, cfg types.SearchConfig, opts ...GoogleOption) (*GoogleSearcher, error) {
	var o googleOptions
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		client = httputil.NewClient(cfg.HTTPConfig)
	} else if cfg.UserAgent != "" {
		client = httputil.WithUserAgent(client, cfg.UserAgent)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = googleAPIBase
	}

	svc, err := customsearch.NewService(ctx,
		option.WithHTTPClient(client),
		option.WithEndpoint(endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Google search client: %w", err)
	}

	return &GoogleSearcher{svc: svc, apiKey: cfg.APIKey, engineID: cfg.EngineID}, nil
}

// Name returns the searcher identifier.
func (g *GoogleSearcher) Name() string { return "google" }

// Search issues one GET for query and returns up to count results (clamped
// to the provider's per-request maximum). A response without items yields
// an empty slice.
func (g *GoogleSearcher) Search(ctx context.Context, query string, count int) ([]types.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("empty Google search query")
	}

	res, err := g.svc.Cse.List().
		Q(query).
		Cx(g.engineID).
		Num(int64(types.ClampResultCount(count))).
		Context(ctx).
		Do(googleapi.QueryParameter("key", g.apiKey))
	if err != nil {
		return nil, describeGoogleError(err)
	}

	results := make([]types.SearchResult, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}

// describeGoogleError turns a client error into a message that names the
// failure class without leaking the request URL (which carries the key).
func describeGoogleError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return fmt.Errorf("Google search API returned HTTP %d: %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("Google search API returned HTTP %d", apiErr.Code)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("parsing Google search response: %w", err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("Google search API request: %w", urlErr.Err)
	}
	return fmt.Errorf("Google search API request: %w", err)
}
