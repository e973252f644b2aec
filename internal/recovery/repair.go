package recovery

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// Control-flow signal of the pipeline. It never leaves this package;
// it resolves into the procedural fallback.
var errNoDaysArray = errors.New("no day array located in parsed value")

// linkPlaceholder replaces link values the repair pass has to rewrite.
const linkPlaceholder = "https://example.com"

var (
	unquotedKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	trailingCommaRe   = regexp.MustCompile(`,(\s*[}\]])`)
	missingCommaObjRe = regexp.MustCompile(`}(\s*)\{`)
	missingCommaArrRe = regexp.MustCompile(`](\s*)\[`)
	danglingLinkRe    = regexp.MustCompile(`"link":\s*"[^"]*"(\s*)([,\]}])`)
	leadingJunkRe     = regexp.MustCompile(`^[^\[{]*`)
	trailingJunkRe    = regexp.MustCompile(`[^}\]]*$`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
	nonPrintableRe    = regexp.MustCompile(`[^\x20-\x7E]`)
)

// truncatedLinkFix repairs a link value that runs straight into the next
// field name because the model dropped the closing brace of the activity.
type truncatedLinkFix struct {
	re          *regexp.Regexp
	replacement string
}

var truncatedLinkFixes = buildTruncatedLinkFixes()

func buildTruncatedLinkFixes() []truncatedLinkFix {
	fields := []string{"time", "title", "description", "location", "cost", "pricePerPerson", "currency", "category"}
	fixes := make([]truncatedLinkFix, 0, len(fields))
	for _, f := range fields {
		re := regexp.MustCompile(`"link":\s*"[^"]*"[^}]*?"` + f + `":`)
		repl := `"link": "` + linkPlaceholder + `"}, {"time": "12:00", "` + f + `":`
		if f == "time" {
			repl = `"link": "` + linkPlaceholder + `"}, {"time":`
		}
		fixes = append(fixes, truncatedLinkFix{re: re, replacement: repl})
	}
	return fixes
}

// repairPass applies one round of syntactic repairs. Order matters: the
// targeted link fixes run before the generic rewrites so a truncated
// activity is closed before key quoting and comma insertion see it.
func repairPass(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)

	for _, fix := range truncatedLinkFixes {
		s = fix.re.ReplaceAllString(s, fix.replacement)
	}

	s = unquotedKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingCommaRe.ReplaceAllString(s, `$1`)
	s = missingCommaObjRe.ReplaceAllString(s, `},$1{`)
	s = missingCommaArrRe.ReplaceAllString(s, `],$1[`)
	s = danglingLinkRe.ReplaceAllString(s, `"link": "`+linkPlaceholder+`"$1$2`)
	s = leadingJunkRe.ReplaceAllString(s, "")
	s = trailingJunkRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// extractBracketed slices the greedy first-bracket to last-bracket region
// out of the raw model text.
func extractBracketed(raw string) (string, bool) {
	start := strings.IndexAny(raw, "{[")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexAny(raw, "}]")
	if end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func parseJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseLenient hands the text to hjson, which tolerates unquoted keys,
// trailing commas and comments natively, then roundtrips the result
// through encoding/json so downstream code sees plain maps and slices.
func parseLenient(s string) (any, error) {
	var v any
	if err := hjson.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// matchingClose returns the index of the bracket closing s[open], honoring
// strings and escapes, or -1 when the structure is truncated.
func matchingClose(s string, open int) int {
	var closer byte
	switch s[open] {
	case '{':
		closer = '}'
	case '[':
		closer = ']'
	default:
		return -1
	}
	opener := s[open]

	depth := 0
	inString := false
	escaped := false

	for i := open; i < len(s); i++ {
		ch := s[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// parseDaysRegion locates the "days": [...] array inside already-repaired
// text, parses just that array, and wraps it back into an object.
func parseDaysRegion(s string) (any, error) {
	idx := strings.Index(s, `"days"`)
	if idx < 0 {
		return nil, errors.New("no days region")
	}
	rest := s[idx+len(`"days"`):]
	lb := strings.IndexByte(rest, '[')
	if lb < 0 {
		return nil, errors.New("days region has no array")
	}
	// Nothing but a colon and whitespace may sit between the key and the
	// bracket, otherwise this is some other "days" occurrence.
	for _, ch := range rest[:lb] {
		if ch != ':' && ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			return nil, errors.New("days key not followed by array")
		}
	}
	rb := matchingClose(rest, lb)
	if rb < 0 {
		return nil, errors.New("days array is truncated")
	}

	arrText := rest[lb : rb+1]
	v, err := parseJSON(arrText)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New("days region did not parse to an array")
	}
	return map[string]any{"days": arr}, nil
}

// parseArrayRoot parses repaired text that is itself a bare array and
// wraps it into {"days": [...]}.
func parseArrayRoot(s string) (any, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, errors.New("text is not an array")
	}
	v, err := parseJSON(trimmed)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, errors.New("text did not parse to an array")
	}
	return map[string]any{"days": arr}, nil
}

// harvestDayObjects salvages whatever individual day-shaped objects can be
// repaired and parsed in isolation, discarding everything else.
func harvestDayObjects(s string) (any, error) {
	var days []any

	i := 0
	for i < len(s) {
		start := strings.IndexByte(s[i:], '{')
		if start < 0 {
			break
		}
		start += i

		end := matchingClose(s, start)
		if end < 0 {
			i = start + 1
			continue
		}

		candidate := s[start : end+1]
		if !strings.Contains(candidate, `"day"`) && !strings.Contains(candidate, `"activities"`) {
			i = start + 1
			continue
		}

		v, err := parseJSON(repairPass(candidate))
		if err != nil {
			i = start + 1
			continue
		}
		m, ok := v.(map[string]any)
		if !ok {
			i = start + 1
			continue
		}
		if _, hasDay := m["day"]; !hasDay {
			if _, hasActivities := m["activities"]; !hasActivities {
				i = start + 1
				continue
			}
		}

		days = append(days, m)
		i = end + 1
	}

	if len(days) == 0 {
		return nil, errors.New("no day objects salvaged")
	}
	return map[string]any{"days": days}, nil
}

type repairStrategy struct {
	name  string
	parse func() (any, error)
}

// repairStrategies builds the ordered chain for one extracted region.
// Cheap, targeted repairs run first so aggressive rewrites never corrupt
// text an earlier strategy could have parsed; the lenient parser sits last
// as the least predictable catch-all.
func repairStrategies(extracted string) []repairStrategy {
	repairedOnce := repairPass(extracted)
	repairedTwice := repairPass(repairedOnce)

	return []repairStrategy{
		{"raw", func() (any, error) { return parseJSON(extracted) }},
		{"repair", func() (any, error) { return parseJSON(repairedOnce) }},
		{"repair-twice", func() (any, error) { return parseJSON(repairedTwice) }},
		{"strip-non-printable", func() (any, error) { return parseJSON(nonPrintableRe.ReplaceAllString(extracted, "")) }},
		{"days-region", func() (any, error) { return parseDaysRegion(repairedOnce) }},
		{"days-region-twice", func() (any, error) { return parseDaysRegion(repairedTwice) }},
		{"array-root", func() (any, error) { return parseArrayRoot(repairedOnce) }},
		{"harvest-objects", func() (any, error) { return harvestDayObjects(repairedOnce) }},
		{"lenient", func() (any, error) { return parseLenient(extracted) }},
	}
}
