package pagination

import (
	"strconv"
	"strings"
)

// NormalizeQuery trims a free-text filter; the second result is false when
// the filter should not be applied.
func NormalizeQuery(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	return q, q != ""
}

// ParseCategoryFilter fails open: "all", blank or non-numeric values mean no filter.
func ParseCategoryFilter(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern returns an ILIKE pattern matching s anywhere.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
