// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for profile-locator: the
// person being looked up, raw search results, the lookup outcome, and the
// configuration for each stage.
package types

import "strings"

// PersonInput describes the person whose public profile should be located.
// FullName is required; the remaining fields only narrow the search.
type PersonInput struct {
	FullName            string `json:"full_name" yaml:"full_name"`
	Email               string `json:"email,omitempty" yaml:"email,omitempty"`
	Location            string `json:"location,omitempty" yaml:"location,omitempty"`
	TitleOrRole         string `json:"title_or_role,omitempty" yaml:"title_or_role,omitempty"`
	CompanyOrUniversity string `json:"company_or_university,omitempty" yaml:"company_or_university,omitempty"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (p PersonInput) Trimmed() PersonInput {
	return PersonInput{
		FullName:            strings.TrimSpace(p.FullName),
		Email:               strings.TrimSpace(p.Email),
		Location:            strings.TrimSpace(p.Location),
		TitleOrRole:         strings.TrimSpace(p.TitleOrRole),
		CompanyOrUniversity: strings.TrimSpace(p.CompanyOrUniversity),
	}
}

// SearchResult is one organic result returned by the search provider, in
// the order the provider returned it.
type SearchResult struct {
	Title   string `json:"title" yaml:"title"`
	Link    string `json:"link" yaml:"link"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// LookupStatus reports whether a lookup produced a profile URL.
type LookupStatus string

const (
	StatusFound    LookupStatus = "FOUND"
	StatusNotFound LookupStatus = "NOT_FOUND"
)

// LookupResult is the successful outcome of a lookup. ProfileURL is nil when
// no candidate survived filtering; Candidates is never nil so it encodes as [].
type LookupResult struct {
	Status     LookupStatus `json:"status" yaml:"status"`
	ProfileURL *string      `json:"linkedin_profile_url" yaml:"linkedin_profile_url"`
	Candidates []string     `json:"candidates" yaml:"candidates"`
}

// NewLookupResult builds a LookupResult from the ordered candidate list.
// The first candidate is the best match.
func NewLookupResult(candidates []string) LookupResult {
	if candidates == nil {
		candidates = []string{}
	}
	if len(candidates) == 0 {
		return LookupResult{Status: StatusNotFound, Candidates: candidates}
	}
	best := candidates[0]
	return LookupResult{Status: StatusFound, ProfileURL: &best, Candidates: candidates}
}

// Found reports whether the lookup produced a best match.
func (r LookupResult) Found() bool {
	return r.ProfileURL != nil
}
