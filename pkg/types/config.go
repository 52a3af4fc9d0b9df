package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 20s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "profile-locator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Search provider limits.
const (
	DefaultMaxResults  = 10
	ProviderMaxResults = 10
	DefaultTimeout     = 20 * time.Second
)

// SearchConfig holds settings for the search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the search provider credential (GOOGLE_API_KEY).
	APIKey string `json:"-" yaml:"api_key,omitempty"`

	// EngineID identifies the programmable search engine (GOOGLE_CX).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// Endpoint overrides the provider base URL. Empty means the public API.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// MaxResults is the number of results requested per query
	// (default 10, capped at the provider maximum of 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// HasCredentials reports whether both the API key and the engine ID are set.
func (c SearchConfig) HasCredentials() bool {
	return c.APIKey != "" && c.EngineID != ""
}

// ResultCount returns MaxResults clamped to the range the provider accepts.
func (c SearchConfig) ResultCount() int {
	return ClampResultCount(c.MaxResults)
}

// ClampResultCount maps n onto 1..ProviderMaxResults; n <= 0 selects the default.
func ClampResultCount(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxResults
	case n > ProviderMaxResults:
		return ProviderMaxResults
	default:
		return n
	}
}

// MatchMode selects how search results are turned into candidates.
type MatchMode string

const (
	// MatchStrict requires the name in the result title and a canonical
	// profile-shaped link, and rewrites links to canonical form.
	MatchStrict MatchMode = "strict"

	// MatchLenient keeps any link containing the profile path prefix and
	// only strips its query string.
	MatchLenient MatchMode = "lenient"
)

// LookupConfig groups the settings of a single lookup.
type LookupConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`

	// Mode selects strict (default) or lenient matching.
	Mode MatchMode `json:"mode" yaml:"mode"`
}

// ServerConfig holds settings for the HTTP entrypoint.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}
