package analysis

import "strings"

// MatchCategory reconciles a classifier's free-text category label against
// the user's category names. The match is case-insensitive substring
// containment in either direction, first match wins. Ambiguity (several
// candidates could match) is accepted behavior: the scan is deterministic
// over the input order. ok is false when nothing matches and the caller
// should keep its current selection.
func MatchCategory(names []string, label string) (match string, ok bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return "", false
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, label) || strings.Contains(label, lower) {
			return name, true
		}
	}
	return "", false
}
