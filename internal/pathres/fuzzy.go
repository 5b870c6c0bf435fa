package pathres

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SimilarityThreshold is the minimum similarity score a filename must
	// reach to be offered as a suggestion.
	SimilarityThreshold = 0.3

	// MaxSuggestions caps the ranked suggestion list.
	MaxSuggestions = 10
)

// Suggestion pairs a candidate path with its similarity score in [0,1].
type Suggestion struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// Ratio returns a similarity measure in [0,1] between two strings, derived
// from the length of their longest common subsequence: 2*LCS / (len(a)+len(b)).
// Identical strings score 1, disjoint strings score 0.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return 2 * float64(lcsLength(a, b)) / float64(len(a)+len(b))
}

// lcsLength computes the longest-common-subsequence length with a two-row
// dynamic program.
func lcsLength(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Suggest ranks the immediate children of the given roots by similarity to
// the requested name. Comparison is case-insensitive on the full basename.
// Scores below SimilarityThreshold are discarded, the list is sorted by
// descending score with ties broken by shorter path, and at most
// MaxSuggestions entries are returned. A root that cannot be listed is
// skipped, never fatal.
func Suggest(target string, exts []string, roots []SearchRoot) []Suggestion {
	name := strings.ToLower(filepath.Base(target))

	var out []Suggestion
	seen := make(map[string]bool)

	for _, root := range roots {
		entries, err := os.ReadDir(root.Base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			fname := entry.Name()
			if len(exts) > 0 && !hasExt(fname, exts) {
				continue
			}
			full := filepath.Join(root.Base, fname)
			if seen[full] {
				continue
			}
			seen[full] = true

			score := Ratio(name, strings.ToLower(fname))
			if score < SimilarityThreshold {
				continue
			}
			out = append(out, Suggestion{Path: full, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return len(out[i].Path) < len(out[j].Path)
	})

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
