// Package pathguard keeps requested paths inside the server root.
//
// Both the root and the requested path are canonicalized through the
// filesystem (absolute, symlinks followed, "." and ".." applied) and then
// compared segment by segment. Anything that cannot be canonicalized is
// rejected.
package pathguard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Canonical returns the absolute, symlink-free form of path.
//
// Relative paths are joined to the working directory without lexical
// cleaning so that ".." is applied after symlinks are followed, the same way
// the kernel resolves the path on open. The path must exist.
func Canonical(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		path = wd + string(filepath.Separator) + path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// Contains reports whether candidate is root or lies below it.
// Both arguments must already be clean absolute paths.
func Contains(root, candidate string) bool {
	if candidate == root {
		return true
	}
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}
	return strings.HasPrefix(candidate, root)
}

// Resolve canonicalizes root and candidate and returns the canonical
// candidate if it is inside the canonical root.
func Resolve(root, candidate string) (string, error) {
	canonicalRoot, err := Canonical(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}
	canonicalCandidate, err := Canonical(candidate)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", candidate, err)
	}
	if !Contains(canonicalRoot, canonicalCandidate) {
		return "", fmt.Errorf("%q is outside %q", canonicalCandidate, canonicalRoot)
	}
	return canonicalCandidate, nil
}

// IsAllowed reports whether candidate resolves to a location inside root.
// Any canonicalization failure, such as a missing file, yields false.
func IsAllowed(root, candidate string) bool {
	_, err := Resolve(root, candidate)
	return err == nil
}
