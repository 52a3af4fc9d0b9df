// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// scriptedSearcher returns one canned response per call, in order.
type scriptedSearcher struct {
	responses [][]types.SearchResult
	errs      []error
	calls     int
}

func (s *scriptedSearcher) Name() string { return "scripted" }

func (s *scriptedSearcher) Search(_ context.Context, _ string, _ int) ([]types.SearchResult, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return nil, nil
}

func TestReadPeopleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.yaml")
	content := `people:
  - full_name: Ronen Siman Tov
    company_or_university: IBM
    title_or_role: CTO
  - full_name: Jane Doe
    email: jane@example.com
    location: Paris
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	people, err := ReadPeopleFile(path)
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, types.PersonInput{FullName: "Ronen Siman Tov", CompanyOrUniversity: "IBM", TitleOrRole: "CTO"}, people[0])
	assert.Equal(t, types.PersonInput{FullName: "Jane Doe", Email: "jane@example.com", Location: "Paris"}, people[1])
}

func TestReadPeopleFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
		wantErr string
	}{
		{"missing file", nil, "reading people file"},
		{"invalid yaml", strPtr("people: [unclosed"), "parsing people file"},
		{"no people", strPtr("people: []\n"), "lists no people"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			_, err := ReadPeopleFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupAll(t *testing.T) {
	s := &scriptedSearcher{
		responses: [][]types.SearchResult{
			{{Title: "Jane Doe - Acme", Link: "https://www.linkedin.com/in/jane-doe"}},
			nil,
			nil,
		},
		errs: []error{nil, nil, errors.New("HTTP 500")},
	}
	people := []types.PersonInput{
		{FullName: "Jane Doe"},
		{FullName: "Nobody Known"},
		{},
		{FullName: "Broken Provider"},
	}

	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())
	rf, err := New(testCfg(), s).LookupAll(ctx, people)
	require.NoError(t, err)
	require.Len(t, rf.Entries, 4)

	assert.Equal(t, types.StatusFound, rf.Entries[0].Result.Status)
	assert.Equal(t, types.StatusNotFound, rf.Entries[1].Result.Status)
	assert.Nil(t, rf.Entries[2].Result)
	assert.Equal(t, ErrMissingName.Error(), rf.Entries[2].Error)
	assert.Nil(t, rf.Entries[3].Result)
	assert.Contains(t, rf.Entries[3].Error, "HTTP 500")

	assert.Equal(t, BatchSummary{
		Total: 4, Found: 1, NotFound: 1, Failed: 2,
		Mode: "strict", Timestamp: rf.Summary.Timestamp,
	}, rf.Summary)
	assert.False(t, rf.Summary.Timestamp.IsZero())

	// The blank entry is rejected before searching.
	assert.Equal(t, 3, s.calls)
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	var failed []string
	for _, line := range lines {
		if strings.Contains(line, "Batch entry failed") {
			failed = append(failed, line)
		}
	}
	require.Len(t, failed, 2)
	assert.Contains(t, failed[0], `"level":"warn"`)
	assert.Contains(t, failed[0], `"entry":3`)
	assert.Contains(t, failed[1], `"entry":4`)
	assert.Contains(t, failed[1], `"full_name":"Broken Provider"`)
}

func TestLookupAllConfigErrorAbortsBeforeSearching(t *testing.T) {
	s := &scriptedSearcher{}
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(context.Background())

	_, err := New(types.LookupConfig{}, s).LookupAll(ctx, []types.PersonInput{{FullName: "Jane Doe"}})
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Equal(t, 0, s.calls)
	assert.NotContains(t, logs.String(), "Batch entry failed")
}

func TestLookupAllStopsOnCancelledContext(t *testing.T) {
	s := &scriptedSearcher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testCfg(), s).LookupAll(ctx, []types.PersonInput{{FullName: "Jane Doe"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.calls)
}

func TestWriteResultsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")
	found := types.NewLookupResult([]string{"https://www.linkedin.com/in/jane-doe/"})
	rf := ResultsFile{
		Entries: []BatchEntry{
			{Person: types.PersonInput{FullName: "Jane Doe"}, Result: &found},
			{Person: types.PersonInput{}, Error: "full_name is required"},
		},
		Summary: BatchSummary{Total: 2, Found: 1, Failed: 1, Mode: "strict"},
	}
	require.NoError(t, WriteResultsFile(path, rf))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "linkedin_profile_url: https://www.linkedin.com/in/jane-doe/")
	assert.Contains(t, text, "status: FOUND")
	assert.Contains(t, text, "error: full_name is required")
	assert.Contains(t, text, "found: 1")
}

func strPtr(s string) *string { return &s }
