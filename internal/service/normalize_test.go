package service

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestNormalizeSummary_CanonicalPassThrough(t *testing.T) {
	reply := `{
		"subjects": [
			{"badge": 96880, "name": "Trung", "summary_md": "- shipped billing", "highlights": ["billing"]},
			{"badge": 100, "name": "Alex", "summary_md": "- fixed auth"}
		],
		"themes": ["billing", "auth"]
	}`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 2)
	require.Equal(t, int64(96880), result.Subjects[0].Badge)
	require.Equal(t, "Trung", result.Subjects[0].Name)
	require.Equal(t, "- shipped billing", result.Subjects[0].SummaryMD)
	require.Equal(t, []string{"billing"}, result.Subjects[0].Highlights)
	require.Equal(t, []string{"billing", "auth"}, result.Themes)
}

func TestNormalizeSummary_TeamRollUpWrapper(t *testing.T) {
	reply := `{
		"team_roll_up": {
			"individual_summaries": [
				{"employee_id": "E-123", "name": "A", "summary": "- did things"}
			],
			"team_themes": ["platform"]
		}
	}`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
	require.Equal(t, int64(123), result.Subjects[0].Badge)
	require.Equal(t, "A", result.Subjects[0].Name)
	require.Equal(t, "- did things", result.Subjects[0].SummaryMD)
	require.Equal(t, []string{"platform"}, result.Themes)
}

func TestNormalizeSummary_IndividualsList(t *testing.T) {
	reply := `{
		"individuals": [
			{"id": 42, "name": "B", "summary_md": "- reviewed PRs", "blockers": ["waiting on infra"]}
		],
		"themes": ["reviews"]
	}`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
	require.Equal(t, int64(42), result.Subjects[0].Badge)
	require.Equal(t, []string{"waiting on infra"}, result.Subjects[0].Blockers)
	require.Equal(t, []string{"reviews"}, result.Themes)
}

func TestNormalizeSummary_BareListPositionalBadges(t *testing.T) {
	reply := `[
		{"name": "First", "summary": "- one"},
		{"name": "Second", "summary": "- two"}
	]`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 2)
	require.Equal(t, int64(1), result.Subjects[0].Badge)
	require.Equal(t, int64(2), result.Subjects[1].Badge)
}

func TestNormalizeSummary_BareListKeepsParseableBadges(t *testing.T) {
	reply := `[{"employee_id": "E-7", "name": "C", "summary": "- seven"}]`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Equal(t, int64(7), result.Subjects[0].Badge)
}

func TestNormalizeSummary_ProseWrappedJSON(t *testing.T) {
	reply := "Here is the roll-up you asked for:\n```json\n" +
		`{"subjects":[{"badge":1,"name":"D","summary_md":"- ok"}]}` +
		"\n```\nLet me know if you need anything else."

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
}

func TestNormalizeSummary_ProseBracketBeforeObject(t *testing.T) {
	reply := "Top result [1] of the window:\n" +
		`{"subjects":[{"badge":3,"name":"E","summary_md":"- ok"}]}`

	result, err := normalizeSummary(reply)
	require.NoError(t, err)
	require.Len(t, result.Subjects, 1)
	require.Equal(t, int64(3), result.Subjects[0].Badge)
}

func TestNormalizeSummary_UnrecognizedShape(t *testing.T) {
	_, err := normalizeSummary(`{"foo":"bar"}`)
	require.ErrorIs(t, err, ErrSummarization)

	var malformedErr *MalformedResponseError
	require.ErrorAs(t, err, &malformedErr)
	require.Contains(t, malformedErr.Preview, `"foo"`)
}

func TestNormalizeSummary_PreviewBounded(t *testing.T) {
	reply := `{"foo":"` + strings.Repeat("x", 2000) + `"}`

	_, err := normalizeSummary(reply)
	require.Error(t, err)

	var malformedErr *MalformedResponseError
	require.True(t, errors.As(err, &malformedErr))
	require.LessOrEqual(t, len(malformedErr.Preview), 400)

	// A multi-byte rune straddling the cap must not be split.
	_, err = normalizeSummary(`{"foo":"` + strings.Repeat("é", 400) + `"}`)
	require.True(t, errors.As(err, &malformedErr))
	require.LessOrEqual(t, len(malformedErr.Preview), 400)
	require.True(t, utf8.ValidString(malformedErr.Preview))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	require.Equal(t, "héllo", truncate("héllo", 10))

	out := truncate(strings.Repeat("x", 399)+"é", 400)
	require.Equal(t, strings.Repeat("x", 399), out)
	require.True(t, utf8.ValidString(out))
}

func TestNormalizeSummary_NotJSON(t *testing.T) {
	_, err := normalizeSummary("sorry, I cannot help with that")
	require.ErrorIs(t, err, ErrSummarization)
}

func TestParseBadge(t *testing.T) {
	badge, ok := parseBadge("E-123")
	require.True(t, ok)
	require.Equal(t, int64(123), badge)

	badge, ok = parseBadge(float64(42))
	require.True(t, ok)
	require.Equal(t, int64(42), badge)

	_, ok = parseBadge("no digits")
	require.False(t, ok)

	_, ok = parseBadge(nil)
	require.False(t, ok)
}
