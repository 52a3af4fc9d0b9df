// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// siteRestriction scopes results to public profile pages.
const siteRestriction = "site:linkedin.com/in"

// excludedPaths suppresses result types that are never personal profiles:
// company pages, posts, job listings, articles, learning content, groups,
// directories and school pages. Order is part of the query contract.
var excludedPaths = []string{
	"/company/",
	"/posts/",
	"/jobs/",
	"/pulse/",
	"/learning/",
	"/groups/",
	"/directory/",
	"/school/",
}

// BuildQuery assembles the search query for p. The result is deterministic:
// the site restriction, the quoted name, the optional company, role and
// location phrases, the path exclusions, then the bare email.
func BuildQuery(p types.PersonInput) string {
	p = p.Trimmed()

	terms := []string{siteRestriction, phrase(p.FullName)}
	for _, opt := range []string{p.CompanyOrUniversity, p.TitleOrRole, p.Location} {
		if q := phrase(opt); q != "" {
			terms = append(terms, q)
		}
	}
	for _, path := range excludedPaths {
		terms = append(terms, "-inurl:"+path)
	}
	if p.Email != "" {
		terms = append(terms, p.Email)
	}
	return strings.Join(strings.Fields(strings.Join(terms, " ")), " ")
}

// phrase returns s as a quoted exact-phrase term, or "" when s is blank.
// Embedded double quotes are dropped so the phrase cannot be split.
func phrase(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
	if s == "" {
		return ""
	}
	return `"` + s + `"`
}
