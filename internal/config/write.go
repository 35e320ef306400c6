package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Marshal returns canonical YAML for cfg: keys sorted at every level, two
// space indent, one trailing newline. The output loads back through Load.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(canonicalNode(toMap(cfg))); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

// Write stores cfg at path as YAML, creating parent directories.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func toMap(cfg Config) map[string]any {
	terms := make([]any, 0, len(cfg.Terminators))
	for _, t := range cfg.Terminators {
		terms = append(terms, t)
	}
	return map[string]any{
		"configVersion":   cfg.ConfigVersion,
		"prompt":          cfg.Prompt,
		"terminators":     terms,
		"farewellDelayMs": cfg.FarewellDelay.Milliseconds(),
		"color":           cfg.Color,
		"layout": map[string]any{
			"padLength":        cfg.Layout.PadLength,
			"truncation":       cfg.Layout.Truncation,
			"nameColumns":      cfg.Layout.NameColumns,
			"attributeColumns": cfg.Layout.AttributeColumns,
			"sizeColumns":      cfg.Layout.SizeColumns,
		},
		"list": map[string]any{
			"recursive":        cfg.List.Recursive,
			"respectGitignore": cfg.List.RespectGitignore,
		},
		"log": map[string]any{
			"level":    cfg.Log.Level,
			"encoding": cfg.Log.Encoding,
		},
	}
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalarFrom(v any) *yaml.Node {
	n := &yaml.Node{}
	_ = n.Encode(v)
	return n
}

func canonicalNode(v any) *yaml.Node {
	switch x := v.(type) {
	case map[string]any:
		return canonicalMapNode(x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, it := range x {
			n.Content = append(n.Content, canonicalNode(it))
		}
		return n
	default:
		return scalarFrom(x)
	}
}

func canonicalMapNode(m map[string]any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Content = append(n.Content, scalarNode(k), canonicalNode(m[k]))
	}
	return n
}
