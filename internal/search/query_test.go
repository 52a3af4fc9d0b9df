// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/profile-locator/pkg/types"
)

const exclusions = "-inurl:/company/ -inurl:/posts/ -inurl:/jobs/ -inurl:/pulse/ " +
	"-inurl:/learning/ -inurl:/groups/ -inurl:/directory/ -inurl:/school/"

var quotedPhrase = regexp.MustCompile(`"[^"]*"`)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		person types.PersonInput
		want   string
	}{
		{
			"name only",
			types.PersonInput{FullName: "Jane Doe"},
			`site:linkedin.com/in "Jane Doe" ` + exclusions,
		},
		{
			"all fields",
			types.PersonInput{
				FullName:            "Ronen Siman Tov",
				Email:               "ronen@example.com",
				Location:            "Tel Aviv",
				TitleOrRole:         "CTO",
				CompanyOrUniversity: "IBM",
			},
			`site:linkedin.com/in "Ronen Siman Tov" "IBM" "CTO" "Tel Aviv" ` + exclusions + ` ronen@example.com`,
		},
		{
			"blank optionals are skipped",
			types.PersonInput{FullName: "Jane Doe", Location: "   ", TitleOrRole: "\t", CompanyOrUniversity: ""},
			`site:linkedin.com/in "Jane Doe" ` + exclusions,
		},
		{
			"fields are trimmed and whitespace collapsed",
			types.PersonInput{FullName: "  Jane \t  Doe ", CompanyOrUniversity: " Acme   Corp "},
			`site:linkedin.com/in "Jane Doe" "Acme Corp" ` + exclusions,
		},
		{
			"embedded quotes are dropped",
			types.PersonInput{FullName: `Jane "JD" Doe`},
			`site:linkedin.com/in "Jane JD Doe" ` + exclusions,
		},
		{
			"email only optional",
			types.PersonInput{FullName: "Jane Doe", Email: " jane@example.com "},
			`site:linkedin.com/in "Jane Doe" ` + exclusions + ` jane@example.com`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.person))
		})
	}
}

func TestBuildQueryNameOnlyHasSinglePhrase(t *testing.T) {
	for _, name := range []string{"Jane Doe", "Ronen Siman Tov", "Zoë Ødegaard-Smith"} {
		q := BuildQuery(types.PersonInput{FullName: name})
		phrases := quotedPhrase.FindAllString(q, -1)
		assert.Equal(t, []string{`"` + name + `"`}, phrases, "query %q", q)
		assert.True(t, strings.HasPrefix(q, siteRestriction+" "), "query %q", q)
		assert.True(t, strings.HasSuffix(q, exclusions), "query %q", q)
	}
}

func TestBuildQueryPhraseOrder(t *testing.T) {
	q := BuildQuery(types.PersonInput{
		FullName:            "A B",
		Location:            "Loc",
		TitleOrRole:         "Role",
		CompanyOrUniversity: "Org",
	})
	phrases := quotedPhrase.FindAllString(q, -1)
	assert.Equal(t, []string{`"A B"`, `"Org"`, `"Role"`, `"Loc"`}, phrases)
}

func TestBuildQueryDeterministic(t *testing.T) {
	p := types.PersonInput{FullName: "Jane Doe", Email: "j@d.io", Location: "Paris"}
	first := BuildQuery(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildQuery(p))
	}
}

func TestBuildQueryNoRepeatedSpaces(t *testing.T) {
	q := BuildQuery(types.PersonInput{FullName: "Jane\n\nDoe", TitleOrRole: "Staff   Engineer"})
	assert.NotContains(t, q, "  ")
	assert.Equal(t, strings.TrimSpace(q), q)
}
