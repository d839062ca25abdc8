package claims

import (
	"encoding/json"
	"strings"
)

// groupParseKind tags how a raw group claim value was interpreted
type groupParseKind int

const (
	parsedEmpty groupParseKind = iota
	parsedJSON
	parsedList
)

// groupAttributePriority is the fixed lookup order for group claims. The
// custom attribute written at signup wins over provider-native attributes.
var groupAttributePriority = []string{
	"custom:groups",
	"cognito:groups",
	"groups",
}

// ExtractGroups parses the group-membership claim from user attributes into a
// deduplicated list preserving first-occurrence order. The first present,
// non-empty attribute from the priority list is used. Absent, empty, or
// unparsable values yield an empty list, never an error.
func ExtractGroups(attrs map[string]string) []string {
	for _, name := range groupAttributePriority {
		raw, ok := attrs[name]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		groups, _ := parseGroupValue(raw)
		return groups
	}
	return nil
}

// parseGroupValue attempts a strict JSON array parse first and falls back to
// comma splitting. The returned kind tags which strategy produced the result.
func parseGroupValue(raw string) ([]string, groupParseKind) {
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		groups := normalizeGroups(arr)
		if len(groups) == 0 {
			return nil, parsedEmpty
		}
		return groups, parsedJSON
	}

	groups := normalizeGroups(strings.Split(raw, ","))
	if len(groups) == 0 {
		return nil, parsedEmpty
	}
	return groups, parsedList
}

// normalizeGroups trims elements, drops empties, and deduplicates by first
// occurrence while preserving order
func normalizeGroups(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var groups []string
	for _, g := range raw {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}
	return groups
}
