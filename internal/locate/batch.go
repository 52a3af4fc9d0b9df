// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-locator/pkg/types"
)

// PeopleFile is the on-disk list of people for a batch lookup.
type PeopleFile struct {
	People []types.PersonInput `yaml:"people"`
}

// BatchEntry is the outcome for one person in a batch. Exactly one of
// Result and Error is set.
type BatchEntry struct {
	Person types.PersonInput   `json:"person" yaml:"person"`
	Result *types.LookupResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchSummary stores result statistics and a timestamp.
type BatchSummary struct {
	Total     int       `json:"total" yaml:"total"`
	Found     int       `json:"found" yaml:"found"`
	NotFound  int       `json:"not_found" yaml:"not_found"`
	Failed    int       `json:"failed" yaml:"failed"`
	Mode      string    `json:"mode" yaml:"mode"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ResultsFile is the on-disk representation of a batch run.
type ResultsFile struct {
	Entries []BatchEntry `json:"entries" yaml:"entries"`
	Summary BatchSummary `json:"summary" yaml:"summary"`
}

// ReadPeopleFile loads the people to look up from a YAML file.
func ReadPeopleFile(path string) ([]types.PersonInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading people file: %w", err)
	}
	var pf PeopleFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing people file: %w", err)
	}
	if len(pf.People) == 0 {
		return nil, fmt.Errorf("people file %s lists no people", path)
	}
	return pf.People, nil
}

// WriteResultsFile saves a batch run to a YAML file.
func WriteResultsFile(path string, rf ResultsFile) error {
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LookupAll looks up each person in order, one request at a time. A
// configuration error aborts the batch before any provider call; any other
// failure is recorded on the entry, logged as a warning, and the batch
// continues.
func (l *Locator) LookupAll(ctx context.Context, people []types.PersonInput) (ResultsFile, error) {
	if err := l.CheckConfig(); err != nil {
		return ResultsFile{}, err
	}

	rf := ResultsFile{
		Entries: make([]BatchEntry, 0, len(people)),
		Summary: BatchSummary{Total: len(people), Mode: string(l.Mode())},
	}
	for i, p := range people {
		if err := ctx.Err(); err != nil {
			return rf, err
		}

		entry := BatchEntry{Person: p}
		res, err := l.Lookup(ctx, p)
		switch {
		case err != nil:
			entry.Error = err.Error()
			rf.Summary.Failed++
			zerolog.Ctx(ctx).Warn().Err(err).
				Int("entry", i+1).
				Str("full_name", p.FullName).
				Msg("Batch entry failed")
		case res.Found():
			entry.Result = &res
			rf.Summary.Found++
		default:
			entry.Result = &res
			rf.Summary.NotFound++
		}
		rf.Entries = append(rf.Entries, entry)
	}
	rf.Summary.Timestamp = time.Now()
	return rf, nil
}
