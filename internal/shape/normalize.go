package shape

import "strings"

const (
	fence     = "```"
	jsonFence = "```json"
)

// Normalize strips a leading ``` or ```json fence and a trailing ``` fence
// from model output, then trims whitespace. Stripping repeats until nothing
// changes, so Normalize(Normalize(s)) == Normalize(s). Fences inside the
// text are left alone.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := stripFences(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripFences(s string) string {
	if rest, ok := strings.CutPrefix(s, jsonFence); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, fence); ok {
		s = rest
	}
	s, _ = strings.CutSuffix(s, fence)
	return strings.TrimSpace(s)
}
