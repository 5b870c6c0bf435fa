package pathres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyPath is returned for empty or whitespace-only requests.
	ErrEmptyPath = errors.New("path is empty")
	// ErrExtension is returned when a request carries an extension outside
	// the accepted set.
	ErrExtension = errors.New("unexpected file extension")
)

// Request is a single path-resolution request.
type Request struct {
	Path       string
	Extensions []string // accepted extensions, e.g. [".osm"]; empty means any
}

// Resolution is the outcome of a Resolve call. When Found is false, Probed
// lists every location that was checked and Suggestions carries up to
// MaxSuggestions similarly-named existing files.
type Resolution struct {
	Found       bool
	Path        string
	Probed      []Candidate
	Suggestions []Suggestion
}

// Resolver locates files across an ordered set of search roots. The root
// list is read-only configuration; which roots are active is recomputed
// from the filesystem on every call, so files uploaded after startup are
// found without a restart.
type Resolver struct {
	roots     []SearchRoot
	mountRoot string
	stat      func(string) (os.FileInfo, error)
}

// New creates a Resolver over the given roots. mountRoot is the prefix
// under which host drives are exposed (usually "/mnt").
func New(roots []SearchRoot, mountRoot string) *Resolver {
	return &Resolver{roots: roots, mountRoot: mountRoot, stat: os.Stat}
}

// WithStat overrides the existence probe. Tests use this to count and
// order probes.
func (r *Resolver) WithStat(stat func(string) (os.FileInfo, error)) *Resolver {
	r.stat = stat
	return r
}

// Resolve turns a user-supplied path into a verified absolute path.
// Candidates are probed strictly in priority order and the first hit wins;
// roots after a hit are never probed. A miss is not an error: the returned
// Resolution carries the probed locations and ranked suggestions instead.
// Only malformed requests (empty path, rejected extension) return an error,
// and they do so before any filesystem access.
func (r *Resolver) Resolve(req Request) (Resolution, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return Resolution{}, ErrEmptyPath
	}

	path = TranslateHostPath(path, r.mountRoot)

	if len(req.Extensions) > 0 {
		if ext := filepath.Ext(path); ext != "" && !hasExt(path, req.Extensions) {
			return Resolution{}, fmt.Errorf("%w: got %q, want one of %s",
				ErrExtension, ext, strings.Join(req.Extensions, ", "))
		}
	}

	active := ActiveRoots(r.roots, r.stat)

	var probed []Candidate
	for _, cand := range Candidates(path, active) {
		probed = append(probed, cand)
		if r.exists(cand.Path) {
			return Resolution{Found: true, Path: cand.Path, Probed: probed}, nil
		}
	}

	return Resolution{
		Probed:      probed,
		Suggestions: Suggest(path, req.Extensions, active),
	}, nil
}

// ResolveOutput produces a writable absolute path for a file that may not
// exist yet. Absolute requests pass through; bare or relative names land in
// defaultDir. The parent directory is created best-effort -- a read-only
// mount is not an error here, the subsequent write surfaces it.
func (r *Resolver) ResolveOutput(path, defaultDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyPath
	}

	path = TranslateHostPath(path, r.mountRoot)
	if !filepath.IsAbs(path) {
		path = filepath.Join(defaultDir, filepath.Base(path))
	}

	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return path, nil
}

func (r *Resolver) exists(path string) bool {
	_, err := r.stat(path)
	return err == nil
}
