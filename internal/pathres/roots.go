package pathres

import (
	"os"
	"path/filepath"
)

// SearchRoot is a named, priority-ordered base directory eligible for
// path resolution. Root order encodes priority: earlier roots are probed
// first.
type SearchRoot struct {
	Label string
	Base  string
}

// Candidate is one (label, absolute path) pair to probe for existence.
type Candidate struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// ActiveRoots filters roots to those whose base directory exists right now,
// preserving order. Existence is checked with the supplied stat function so
// callers can observe or fake the probes.
func ActiveRoots(roots []SearchRoot, stat func(string) (os.FileInfo, error)) []SearchRoot {
	active := make([]SearchRoot, 0, len(roots))
	for _, root := range roots {
		info, err := stat(root.Base)
		if err != nil || !info.IsDir() {
			continue
		}
		active = append(active, root)
	}
	return active
}

// Candidates builds the ordered probe list for a translated request.
// An absolute request is the sole candidate; anything else is joined against
// every active root in priority order. The same request against the same
// root list always yields the same candidate order.
func Candidates(request string, roots []SearchRoot) []Candidate {
	if filepath.IsAbs(request) {
		return []Candidate{{Label: "absolute", Path: filepath.Clean(request)}}
	}

	out := make([]Candidate, 0, len(roots))
	for _, root := range roots {
		out = append(out, Candidate{Label: root.Label, Path: filepath.Join(root.Base, request)})
	}
	return out
}
