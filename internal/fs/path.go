package fs

import (
	"strings"
)

// BaseName returns the final component of p, ignoring trailing slashes and
// trailing "." components. It reports false when p has no such component
// ("", "/", ".", or a path ending in "..").
func BaseName(p string) (string, bool) {
	p = strings.TrimRight(p, "/")
	for strings.HasSuffix(p, "/.") {
		p = strings.TrimRight(strings.TrimSuffix(p, "/."), "/")
	}
	name := p[strings.LastIndexByte(p, '/')+1:]
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return name, true
}

// PrefixPaths returns every ancestor prefix of p followed by p itself, in the
// order they have to be created: "a/b/c" yields "a", "a/b", "a/b/c".
// Empty components (a leading slash, repeated slashes) produce no prefix.
// A path with no components yields p unchanged.
func PrefixPaths(p string) []string {
	var prefixes []string
	start := 0
	for i := 0; i <= len(p); i++ {
		if i < len(p) && p[i] != '/' {
			continue
		}
		if i > start {
			prefixes = append(prefixes, p[:i])
		}
		start = i + 1
	}
	if len(prefixes) == 0 {
		return []string{p}
	}
	return prefixes
}

// IsHidden reports whether a directory entry name is hidden. Only the leading
// dot counts; filesystem hidden attributes are ignored.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
