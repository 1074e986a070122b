package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSeparator reports whether cluster is a single ASCII punctuation or ASCII
// whitespace character. Non-ASCII clusters are never separators.
func IsSeparator(cluster string) bool {
	if len(cluster) != 1 {
		return false
	}
	c := cluster[0]
	switch {
	case c == ' ', c == '\t', c == '\n', c == '\r', c == '\f', c == '\v':
		return true
	case c >= '!' && c <= '/', c >= ':' && c <= '@', c >= '[' && c <= '`', c >= '{' && c <= '~':
		return true
	}
	return false
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

// HasPrefixAt reports whether clusters[at:] starts with prefix.
func HasPrefixAt(clusters []string, at int, prefix []string) bool {
	if at < 0 || len(prefix) == 0 || at+len(prefix) > len(clusters) {
		return false
	}
	for i, p := range prefix {
		if clusters[at+i] != p {
			return false
		}
	}
	return true
}

// Index returns the first cluster index i in [start, end) such that
// clusters[i:] starts with query and the match ends at or before end.
// It returns -1 when there is no such index.
func Index(clusters []string, query []string, start, end int) int {
	start, end = clampWindow(start, end, len(clusters))
	for i := start; i+len(query) <= end; i++ {
		if HasPrefixAt(clusters, i, query) {
			return i
		}
	}
	return -1
}

// LastIndex is like Index but returns the last match in [start, end).
func LastIndex(clusters []string, query []string, start, end int) int {
	start, end = clampWindow(start, end, len(clusters))
	for i := end - len(query); i >= start; i-- {
		if HasPrefixAt(clusters, i, query) {
			return i
		}
	}
	return -1
}

func clampWindow(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
