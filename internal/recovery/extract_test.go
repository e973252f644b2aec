package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayObject(day int) map[string]any {
	return map[string]any{"day": float64(day), "activities": []any{}}
}

func TestLocateDaysArrayRootArray(t *testing.T) {
	in := []any{dayObject(1), dayObject(2)}

	arr, err := locateDaysArray(in)
	require.NoError(t, err)
	assert.Len(t, arr, 2)
}

func TestLocateDaysArrayPrefersDaysKey(t *testing.T) {
	in := map[string]any{
		"itinerary": []any{dayObject(9)},
		"days":      []any{dayObject(1)},
	}

	arr, err := locateDaysArray(in)
	require.NoError(t, err)
	require.Len(t, arr, 1)
	assert.Equal(t, dayObject(1), arr[0])
}

func TestLocateDaysArrayItineraryKey(t *testing.T) {
	in := map[string]any{"itinerary": []any{dayObject(1)}}

	arr, err := locateDaysArray(in)
	require.NoError(t, err)
	assert.Len(t, arr, 1)
}

func TestLocateDaysArrayFirstArrayPropertyAlphabetically(t *testing.T) {
	in := map[string]any{
		"zulu":  []any{dayObject(2)},
		"alpha": []any{dayObject(1)},
	}

	arr, err := locateDaysArray(in)
	require.NoError(t, err)
	require.Len(t, arr, 1)
	assert.Equal(t, dayObject(1), arr[0])
}

func TestLocateDaysArrayEmptyDaysIsNotFound(t *testing.T) {
	// An empty "days" array terminates the direct lookup; the nested day
	// data elsewhere is deliberately not searched.
	in := map[string]any{
		"days":  []any{},
		"other": map[string]any{"plan": []any{dayObject(1)}},
	}

	_, err := locateDaysArray(in)
	assert.ErrorIs(t, err, errNoDaysArray)
}

func TestLocateDaysArrayDeepSearch(t *testing.T) {
	in := map[string]any{
		"result": map[string]any{
			"data": map[string]any{
				"plan": []any{dayObject(1), dayObject(2)},
			},
		},
	}

	arr, err := locateDaysArray(in)
	require.NoError(t, err)
	assert.Len(t, arr, 2)
}

func TestLocateDaysArrayDeepSearchRequiresDayLikeFirstElement(t *testing.T) {
	in := map[string]any{
		"result": map[string]any{
			"tags": []any{map[string]any{"name": "x"}},
		},
	}

	_, err := locateDaysArray(in)
	assert.ErrorIs(t, err, errNoDaysArray)
}

func TestLocateDaysArrayDepthLimit(t *testing.T) {
	var v any = []any{dayObject(1)}
	for i := 0; i < maxSearchDepth+5; i++ {
		v = map[string]any{"wrap": v}
	}

	_, err := locateDaysArray(v)
	assert.ErrorIs(t, err, errNoDaysArray)
}

func TestLocateDaysArrayScalarInput(t *testing.T) {
	_, err := locateDaysArray("just text")
	assert.ErrorIs(t, err, errNoDaysArray)
}
