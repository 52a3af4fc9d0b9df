// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// Output formats accepted by Format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Format writes v in the named format. Table output is only defined for
// LookupResult and ResultsFile; other formats accept any value.
func Format(format string, v any, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(v, w)
	case FormatYAML:
		return WriteYAML(v, w)
	case FormatTable, "":
		switch t := v.(type) {
		case types.LookupResult:
			WriteResultTable(t, w)
		case ResultsFile:
			WriteBatchTable(t, w)
		default:
			return fmt.Errorf("table output not supported for %T", v)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json or yaml", format)
	}
}

// WriteResultTable writes a lookup result as a human-readable listing.
func WriteResultTable(r types.LookupResult, w io.Writer) {
	if !r.Found() {
		fmt.Fprintln(w, "No profile found.")
		return
	}

	fmt.Fprintf(w, "Best match: %s\n\n", *r.ProfileURL)
	fmt.Fprintf(w, "%-4s  %s\n", "Rank", "Candidate")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for i, c := range r.Candidates {
		fmt.Fprintf(w, "%-4d  %s\n", i+1, c)
	}
	fmt.Fprintf(w, "\n%d candidates\n", len(r.Candidates))
}

// WriteBatchTable writes one line per batch entry and a summary.
func WriteBatchTable(rf ResultsFile, w io.Writer) {
	if len(rf.Entries) == 0 {
		fmt.Fprintln(w, "No entries.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-10s  %s\n", "#", "Name", "Status", "Profile")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for i, e := range rf.Entries {
		status, url := "ERROR", e.Error
		if e.Result != nil {
			status, url = string(e.Result.Status), ""
			if e.Result.Found() {
				url = *e.Result.ProfileURL
			}
		}
		fmt.Fprintf(w, "%-4d  %-30s  %-10s  %s\n", i+1, truncate(e.Person.FullName, 30), status, url)
	}

	s := rf.Summary
	fmt.Fprintf(w, "\n%d people: %d found, %d not found, %d failed\n", s.Total, s.Found, s.NotFound, s.Failed)
}

// WriteJSON writes v as indented JSON to w.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as YAML to w.
func WriteYAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
