package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// parseCUE extracts the known fields from a compiled CUE value. Fields that
// exist with the wrong kind are reported rather than ignored.
func parseCUE(v cue.Value) (fileConfig, error) {
	var fc fileConfig
	if err := requireStringField(v, "configVersion"); err != nil {
		return fileConfig{}, err
	}
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&fc.ConfigVersion); err != nil {
		return fileConfig{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	var err error
	if fc.Prompt, err = optionalString(v, "prompt"); err != nil {
		return fileConfig{}, err
	}
	if fc.Terminators, err = optionalStringList(v, "terminators"); err != nil {
		return fileConfig{}, err
	}
	if fc.FarewellDelayMs, err = optionalInt(v, "farewellDelayMs"); err != nil {
		return fileConfig{}, err
	}
	if fc.Color, err = optionalBool(v, "color"); err != nil {
		return fileConfig{}, err
	}
	if fc.Layout, err = parseLayoutSection(v); err != nil {
		return fileConfig{}, err
	}
	if fc.List, err = parseListSection(v); err != nil {
		return fileConfig{}, err
	}
	if fc.Log, err = parseLogSection(v); err != nil {
		return fileConfig{}, err
	}
	return fc, nil
}

// parseLayoutSection extracts optional layout.* fields.
func parseLayoutSection(v cue.Value) (*fileLayout, error) {
	lv := v.LookupPath(cue.ParsePath("layout"))
	if !lv.Exists() {
		return nil, nil
	}
	var (
		l   fileLayout
		err error
	)
	if l.PadLength, err = optionalInt(lv, "padLength"); err != nil {
		return nil, err
	}
	if l.Truncation, err = optionalString(lv, "truncation"); err != nil {
		return nil, err
	}
	if l.NameColumns, err = optionalInt(lv, "nameColumns"); err != nil {
		return nil, err
	}
	if l.AttributeColumns, err = optionalInt(lv, "attributeColumns"); err != nil {
		return nil, err
	}
	if l.SizeColumns, err = optionalInt(lv, "sizeColumns"); err != nil {
		return nil, err
	}
	return &l, nil
}

// parseListSection extracts optional list.* fields.
func parseListSection(v cue.Value) (*fileList, error) {
	lv := v.LookupPath(cue.ParsePath("list"))
	if !lv.Exists() {
		return nil, nil
	}
	var (
		l   fileList
		err error
	)
	if l.Recursive, err = optionalBool(lv, "recursive"); err != nil {
		return nil, err
	}
	if l.RespectGitignore, err = optionalBool(lv, "respectGitignore"); err != nil {
		return nil, err
	}
	return &l, nil
}

// parseLogSection extracts optional log.* fields.
func parseLogSection(v cue.Value) (*fileLog, error) {
	lv := v.LookupPath(cue.ParsePath("log"))
	if !lv.Exists() {
		return nil, nil
	}
	var (
		l   fileLog
		err error
	)
	if l.Level, err = optionalString(lv, "level"); err != nil {
		return nil, err
	}
	if l.Encoding, err = optionalString(lv, "encoding"); err != nil {
		return nil, err
	}
	return &l, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func lookupKind(v cue.Value, name string, kind cue.Kind, label string) (cue.Value, bool, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return f, false, nil
	}
	if f.Kind() != kind {
		return f, false, fmt.Errorf("invalid type for field: %s (expected %s)", name, label)
	}
	return f, true, nil
}

func optionalString(v cue.Value, name string) (*string, error) {
	f, ok, err := lookupKind(v, name, cue.StringKind, "string")
	if !ok {
		return nil, err
	}
	var s string
	if err := f.Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return &s, nil
}

func optionalInt(v cue.Value, name string) (*int, error) {
	f, ok, err := lookupKind(v, name, cue.IntKind, "int")
	if !ok {
		return nil, err
	}
	var n int
	if err := f.Decode(&n); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return &n, nil
}

func optionalBool(v cue.Value, name string) (*bool, error) {
	f, ok, err := lookupKind(v, name, cue.BoolKind, "bool")
	if !ok {
		return nil, err
	}
	var b bool
	if err := f.Decode(&b); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return &b, nil
}

func optionalStringList(v cue.Value, name string) ([]string, error) {
	f, ok, err := lookupKind(v, name, cue.ListKind, "list of strings")
	if !ok {
		return nil, err
	}
	out := []string{}
	if err := f.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid value for %s: %v", name, err)
	}
	return out, nil
}
