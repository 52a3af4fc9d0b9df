// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile decides which search results are public profile pages for
// the requested person and rewrites their links to one canonical form.
package profile

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/profile-locator/pkg/types"
)

const (
	// Domain is the professional-network provider whose profiles are located.
	Domain = "linkedin.com"

	// CanonicalHost is the host every normalized profile URL uses.
	CanonicalHost = "www." + Domain

	// lenientMarker is the only check applied in lenient mode.
	lenientMarker = Domain + "/in/"
)

// profilePath matches a single-segment /in/ or /pub/ path, tolerating
// repeated trailing slashes.
var profilePath = regexp.MustCompile(`^/(in|pub)/([^/]+)/*$`)

// NormalizeName lowercases s, drops every rune that is not a letter, digit or
// whitespace, and collapses whitespace runs to single spaces. s is decomposed
// first, so combining marks are dropped whether the input was precomposed or
// not.
func NormalizeName(s string) string {
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// MatchesName reports whether the normalized fullName occurs in the
// normalized title. A name that normalizes to nothing matches no title.
func MatchesName(fullName, title string) bool {
	name := NormalizeName(fullName)
	if name == "" {
		return false
	}
	return strings.Contains(NormalizeName(title), name)
}

// NormalizeURL validates link as a profile URL and returns its canonical
// form: https, www host, single trailing slash, no query or fragment.
// ok is false for unparseable links, foreign hosts and non-profile paths.
func NormalizeURL(link string) (canonical string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}
	if !strings.Contains(strings.ToLower(u.Hostname()), Domain) {
		return "", false
	}
	m := profilePath.FindStringSubmatch(u.EscapedPath())
	if m == nil || isDotSegment(m[2]) {
		return "", false
	}
	return "https://" + CanonicalHost + "/" + m[1] + "/" + m[2] + "/", true
}

// isDotSegment reports whether the escaped slug is "." or "..", plain or
// percent-encoded. Slugs that fail to unescape count as invalid too.
func isDotSegment(slug string) bool {
	s, err := url.PathUnescape(slug)
	if err != nil {
		return true
	}
	return s == "." || s == ".."
}

// Filter returns the canonical profile URLs of results whose title contains
// the person's name, deduplicated in first-seen order. Results that fail any
// check are skipped; Filter never fails.
func Filter(person types.PersonInput, results []types.SearchResult) []string {
	var d dedup
	for _, r := range results {
		if !MatchesName(person.FullName, r.Title) {
			continue
		}
		if canonical, ok := NormalizeURL(r.Link); ok {
			d.add(canonical)
		}
	}
	return d.list()
}

// FilterLenient keeps every link that mentions the profile path prefix,
// with the query string cut off. Titles are ignored and links are not
// canonicalized; duplicates are still removed in first-seen order.
func FilterLenient(results []types.SearchResult) []string {
	var d dedup
	for _, r := range results {
		if !strings.Contains(r.Link, lenientMarker) {
			continue
		}
		link, _, _ := strings.Cut(r.Link, "?")
		d.add(link)
	}
	return d.list()
}

// Candidates applies the filter selected by mode.
func Candidates(mode types.MatchMode, person types.PersonInput, results []types.SearchResult) []string {
	if mode == types.MatchLenient {
		return FilterLenient(results)
	}
	return Filter(person, results)
}

// dedup accumulates strings in insertion order, dropping repeats.
type dedup struct {
	seen  map[string]struct{}
	order []string
}

func (d *dedup) add(s string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, dup := d.seen[s]; dup {
		return
	}
	d.seen[s] = struct{}{}
	d.order = append(d.order, s)
}

func (d *dedup) list() []string {
	if d.order == nil {
		return []string{}
	}
	return d.order
}
