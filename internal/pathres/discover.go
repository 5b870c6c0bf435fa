package pathres

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FindByName finds files under the given roots whose basename contains the
// partial name, case-insensitively. A multi-word partial ("san francisco")
// matches when every word appears in the basename. Roots are walked
// recursively and in parallel; the result order is made deterministic by
// sorting on basename length (shorter names are the more obvious matches),
// then on path. Unreadable directories are skipped.
func FindByName(partial string, exts []string, roots []SearchRoot) []string {
	active := ActiveRoots(roots, os.Stat)

	perRoot := make([][]string, len(active))
	var g errgroup.Group
	for i, root := range active {
		g.Go(func() error {
			perRoot[i] = scanRoot(root.Base, strings.ToLower(partial), exts)
			return nil
		})
	}
	_ = g.Wait() // scanRoot never reports an error; misses are skips

	var out []string
	seen := make(map[string]bool)
	for _, files := range perRoot {
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		bi, bj := filepath.Base(out[i]), filepath.Base(out[j])
		if len(bi) != len(bj) {
			return len(bi) < len(bj)
		}
		return out[i] < out[j]
	})
	return out
}

func scanRoot(base, partial string, exts []string) []string {
	var matches []string
	_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if len(exts) > 0 && !hasExt(name, exts) {
			return nil
		}
		if matchesPartial(name, partial) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches
}

func matchesPartial(name, partial string) bool {
	if strings.Contains(name, partial) {
		return true
	}
	words := strings.Fields(partial)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(name, w) {
			return false
		}
	}
	return true
}
