package pathres

import (
	"path/filepath"
	"strings"
)

// TranslateHostPath rewrites a Windows drive-letter path to its mounted
// location inside the container, e.g. "C:\Users\A\f.osm" becomes
// "/mnt/c/Users/A/f.osm" for mountRoot "/mnt". Backslash separators are
// normalized either way. Paths that carry no drive letter are returned
// otherwise unchanged. The function is pure: no filesystem access, and the
// rewrite happens even for drive letters that are not actually mounted --
// those simply fail the existence probe later.
func TranslateHostPath(path, mountRoot string) string {
	p := path
	if strings.Contains(p, `\`) {
		p = strings.ReplaceAll(p, `\`, "/")
	}

	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		drive := strings.ToLower(p[:1])
		rest := strings.TrimPrefix(p[2:], "/")
		return filepath.Join(mountRoot, drive, rest)
	}

	return p
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
