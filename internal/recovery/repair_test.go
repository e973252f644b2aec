package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairPassQuotesBareKeys(t *testing.T) {
	out := repairPass(`{day: 1, activities: []}`)
	assert.Equal(t, `{"day": 1, "activities": []}`, out)

	_, err := parseJSON(out)
	assert.NoError(t, err)
}

func TestRepairPassConvertsSingleQuotes(t *testing.T) {
	out := repairPass(`{"title": 'Museum Visit'}`)
	assert.Equal(t, `{"title": "Museum Visit"}`, out)
}

func TestRepairPassRemovesTrailingCommas(t *testing.T) {
	out := repairPass(`{"a": 1,}`)
	assert.Equal(t, `{"a": 1}`, out)

	out = repairPass(`[1, 2, 3,]`)
	assert.Equal(t, `[1, 2, 3]`, out)
}

func TestRepairPassInsertsMissingCommas(t *testing.T) {
	out := repairPass(`[{"a": 1} {"b": 2}]`)
	_, err := parseJSON(out)
	assert.NoError(t, err)
}

func TestRepairPassStripsSurroundingProse(t *testing.T) {
	out := repairPass(`Here is your itinerary: {"a": 1} hope it helps`)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestRepairPassNormalizesLinkValues(t *testing.T) {
	out := repairPass(`{"link": "https://example.org/very/deep/path"}`)
	assert.Contains(t, out, linkPlaceholder)
}

func TestRepairPassClosesTruncatedActivity(t *testing.T) {
	// The model dropped the closing brace after the link and ran straight
	// into the next activity's fields.
	in := `[{"title": "A", "link": "https://x", "time": "10:00", "title": "B"}]`
	out := repairPass(in)

	v, err := parseJSON(out)
	require.NoError(t, err)

	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)

	second, ok := arr[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10:00", second["time"])
	assert.Equal(t, "B", second["title"])
}

func TestRepairPassUnescapesEscapedQuotes(t *testing.T) {
	out := repairPass(`{\"a\": 1}`)
	assert.Equal(t, `{"a": 1}`, out)
}

func TestExtractBracketed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"object with prose", `Sure! {"a": 1} done`, `{"a": 1}`, true},
		{"bare array", `[1, 2]`, `[1, 2]`, true},
		{"no brackets", `sorry, I cannot help with that`, "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractBracketed(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchingClose(t *testing.T) {
	s := `{"a": "b}", "c": [1, {"d": 2}]}`
	assert.Equal(t, len(s)-1, matchingClose(s, 0))

	assert.Equal(t, -1, matchingClose(`{"a": 1`, 0))
	assert.Equal(t, -1, matchingClose(`x`, 0))
}

func TestParseDaysRegionInsideTruncatedObject(t *testing.T) {
	// Outer object never closes but the days array itself is balanced.
	in := `{"days": [{"day": 1, "activities": [{"time": "09:00"}]}], "note": "cut off`

	v, err := parseDaysRegion(in)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	arr, ok := m["days"].([]any)
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestParseDaysRegionRejectsTruncatedArray(t *testing.T) {
	_, err := parseDaysRegion(`{"days": [{"day": 1`)
	assert.Error(t, err)
}

func TestParseDaysRegionRequiresKeyBeforeArray(t *testing.T) {
	_, err := parseDaysRegion(`{"note": "no days here"}`)
	assert.Error(t, err)
}

func TestParseArrayRoot(t *testing.T) {
	v, err := parseArrayRoot(`[{"day": 1}]`)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Len(t, m["days"], 1)

	_, err = parseArrayRoot(`{"day": 1}`)
	assert.Error(t, err)
}

func TestHarvestDayObjects(t *testing.T) {
	in := `report {"day": 1, "activities": []} noise {"note": "skip me"} {"day": 2, "activities": []}`

	v, err := harvestDayObjects(in)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	arr, ok := m["days"].([]any)
	require.True(t, ok)
	assert.Len(t, arr, 2)
}

func TestHarvestDayObjectsNothingSalvageable(t *testing.T) {
	_, err := harvestDayObjects(`{"note": "not a day"} plain text`)
	assert.Error(t, err)
}

func TestParseLenientAcceptsRelaxedSyntax(t *testing.T) {
	v, err := parseLenient(`{day: 1, activities: []}`)
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), m["day"])
}

func TestRepairStrategiesOrder(t *testing.T) {
	want := []string{
		"raw", "repair", "repair-twice", "strip-non-printable",
		"days-region", "days-region-twice", "array-root",
		"harvest-objects", "lenient",
	}
	strategies := repairStrategies(`{}`)
	require.Len(t, strategies, len(want))
	for i, s := range strategies {
		assert.Equal(t, want[i], s.name)
	}
}
