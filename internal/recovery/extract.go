package recovery

import "sort"

// maxSearchDepth bounds the recursive day-array search so adversarial,
// deeply nested model output cannot blow the stack.
const maxSearchDepth = 20

// locateDaysArray finds the array of day-like entries inside a parsed
// value. Precedence: the value itself, its "days" key, its "itinerary"
// key, its first array-valued key, then a bounded depth-first search for
// the first array whose first element looks like a day. An empty result
// counts as not found.
func locateDaysArray(v any) ([]any, error) {
	arr, found := directDaysArray(v)
	if !found {
		arr = searchDayLikeArray(v, maxSearchDepth)
		found = arr != nil
	}

	if !found || len(arr) == 0 {
		return nil, errNoDaysArray
	}
	return arr, nil
}

func directDaysArray(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		if a, ok := t["days"].([]any); ok {
			return a, true
		}
		if a, ok := t["itinerary"].([]any); ok {
			return a, true
		}
		// Go maps have no insertion order, so the "first array-valued
		// property" scan walks keys alphabetically for determinism.
		for _, k := range sortedKeys(t) {
			if a, ok := t[k].([]any); ok {
				return a, true
			}
		}
	}
	return nil, false
}

// searchDayLikeArray walks the whole structure depth first and returns
// the first array whose first element exposes a "day" or "activities"
// key. Only the first element is inspected; malformed model output is
// best-effort territory anyway.
func searchDayLikeArray(v any, depth int) []any {
	if depth <= 0 {
		return nil
	}

	switch t := v.(type) {
	case []any:
		if len(t) > 0 {
			if m, ok := t[0].(map[string]any); ok {
				if _, has := m["day"]; has {
					return t
				}
				if _, has := m["activities"]; has {
					return t
				}
			}
		}
		for _, el := range t {
			if found := searchDayLikeArray(el, depth-1); found != nil {
				return found
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(t) {
			if found := searchDayLikeArray(t[k], depth-1); found != nil {
				return found
			}
		}
	}

	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
