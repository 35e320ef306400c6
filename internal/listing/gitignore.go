package listing

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreMatcher answers .gitignore queries for paths under a listing root.
// Patterns are read once per directory.
type ignoreMatcher struct {
	root     string
	patterns map[string][]gitignore.Pattern
}

func newIgnoreMatcher(root string) *ignoreMatcher {
	return &ignoreMatcher{root: root, patterns: map[string][]gitignore.Pattern{}}
}

// dirsForRel returns the directories from "." down to the parent of rel.
func dirsForRel(rel string) []string {
	dir := filepath.Dir(rel)
	dirs := []string{"."}
	if dir == "." {
		return dirs
	}
	cur := ""
	for _, part := range strings.Split(dir, string(os.PathSeparator)) {
		cur = filepath.Join(cur, part)
		dirs = append(dirs, cur)
	}
	return dirs
}

func (m *ignoreMatcher) dirPatterns(d string) []gitignore.Pattern {
	if ps, ok := m.patterns[d]; ok {
		return ps
	}
	var ps []gitignore.Pattern
	b, err := os.ReadFile(filepath.Join(m.root, d, ".gitignore"))
	if err == nil {
		var domain []string
		if d != "." {
			domain = strings.Split(filepath.ToSlash(d), "/")
		}
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			ps = append(ps, gitignore.ParsePattern(line, domain))
		}
	}
	m.patterns[d] = ps
	return ps
}

// Ignored reports whether path (absolute or relative to the working
// directory) is excluded by a .gitignore between the root and the path.
func (m *ignoreMatcher) Ignored(path string, isDir bool) bool {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	var patterns []gitignore.Pattern
	for _, d := range dirsForRel(rel) {
		patterns = append(patterns, m.dirPatterns(d)...)
	}
	if len(patterns) == 0 {
		return false
	}
	return gitignore.NewMatcher(patterns).Match(strings.Split(rel, string(os.PathSeparator)), isDir)
}
