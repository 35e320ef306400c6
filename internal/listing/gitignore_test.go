package listing

import (
	"path/filepath"
	"testing"

	"github.com/flarebyte/demo-shell/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestIgnoreMatcher_Ignored(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		".gitignore":     "..foo\n*.log\n",
		"..foo":          "",
		"keep.txt":       "",
		"sub/.gitignore": "gen/\n",
		"sub/gen/":       "",
	})
	m := newIgnoreMatcher(root)

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  bool
	}{
		{name: "dot-dot prefixed name in root", path: filepath.Join(root, "..foo"), want: true},
		{name: "plain file kept", path: filepath.Join(root, "keep.txt"), want: false},
		{name: "pattern from root applies below", path: filepath.Join(root, "sub", "x.log"), want: true},
		{name: "nested gitignore", path: filepath.Join(root, "sub", "gen"), isDir: true, want: true},
		{name: "root itself", path: root, isDir: true, want: false},
		{name: "parent of root", path: filepath.Dir(root), isDir: true, want: false},
		{name: "outside root", path: filepath.Join(filepath.Dir(root), "x.log"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, m.Ignored(tt.path, tt.isDir))
		})
	}
}
