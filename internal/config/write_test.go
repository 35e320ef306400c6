package config

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestMarshal_RewriteStable(t *testing.T) {
	b1, err := Marshal(Default())
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	b2, err := Marshal(Default())
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("not rewrite-stable\nfirst:\n%s\nsecond:\n%s", string(b1), string(b2))
	}
	if !bytes.HasSuffix(b1, []byte("\n")) || bytes.HasSuffix(b1, []byte("\n\n")) {
		t.Fatalf("expected exactly one trailing newline:\n%q", string(b1))
	}
	out := string(b1)
	order := []string{"color:", "configVersion:", "farewellDelayMs:", "layout:", "list:", "log:", "prompt:", "terminators:"}
	last := -1
	for _, key := range order {
		i := strings.Index(out, "\n"+key)
		if key == "color:" && strings.HasPrefix(out, key) {
			i = 0
		}
		if i <= last {
			t.Fatalf("key %s out of order in:\n%s", key, out)
		}
		last = i
	}
}

func TestWrite_LoadsBack(t *testing.T) {
	cfg := Default()
	cfg.Prompt = "shell >"
	cfg.Terminators = []string{"quit", "q"}
	cfg.FarewellDelay = 250 * time.Millisecond
	cfg.Color = true
	cfg.List.Recursive = true
	cfg.Log.Encoding = "json"

	p := filepath.Join(t.TempDir(), "nested", "demo.yaml")
	if err := Write(p, cfg); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch\nwant: %+v\n got: %+v", cfg, got)
	}
}
