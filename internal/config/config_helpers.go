package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the on-disk schema. Pointer fields distinguish "unset"
// from zero so defaults survive partial files.
type fileConfig struct {
	ConfigVersion   string      `yaml:"configVersion"`
	Prompt          *string     `yaml:"prompt"`
	Terminators     []string    `yaml:"terminators"`
	Layout          *fileLayout `yaml:"layout"`
	FarewellDelayMs *int        `yaml:"farewellDelayMs"`
	Color           *bool       `yaml:"color"`
	List            *fileList   `yaml:"list"`
	Log             *fileLog    `yaml:"log"`
}

type fileLayout struct {
	PadLength        *int    `yaml:"padLength"`
	Truncation       *string `yaml:"truncation"`
	NameColumns      *int    `yaml:"nameColumns"`
	AttributeColumns *int    `yaml:"attributeColumns"`
	SizeColumns      *int    `yaml:"sizeColumns"`
}

type fileList struct {
	Recursive        *bool `yaml:"recursive"`
	RespectGitignore *bool `yaml:"respectGitignore"`
}

type fileLog struct {
	Level    *string `yaml:"level"`
	Encoding *string `yaml:"encoding"`
}

func (fc fileConfig) applyTo(cfg *Config) {
	cfg.ConfigVersion = fc.ConfigVersion
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.Terminators != nil {
		cfg.Terminators = append([]string(nil), fc.Terminators...)
	}
	if l := fc.Layout; l != nil {
		setInt(&cfg.Layout.PadLength, l.PadLength)
		setInt(&cfg.Layout.NameColumns, l.NameColumns)
		setInt(&cfg.Layout.AttributeColumns, l.AttributeColumns)
		setInt(&cfg.Layout.SizeColumns, l.SizeColumns)
		if l.Truncation != nil {
			cfg.Layout.Truncation = *l.Truncation
		}
	}
	if fc.FarewellDelayMs != nil {
		cfg.FarewellDelay = time.Duration(*fc.FarewellDelayMs) * time.Millisecond
	}
	setBool(&cfg.Color, fc.Color)
	if l := fc.List; l != nil {
		setBool(&cfg.List.Recursive, l.Recursive)
		setBool(&cfg.List.RespectGitignore, l.RespectGitignore)
	}
	if l := fc.Log; l != nil {
		if l.Level != nil {
			cfg.Log.Level = *l.Level
		}
		if l.Encoding != nil {
			cfg.Log.Encoding = *l.Encoding
		}
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return data, nil
}

// readYAML decodes a YAML config, rejecting unknown keys.
func readYAML(path string) (fileConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, fmt.Errorf("invalid config: %v", err)
	}
	return fc, nil
}

// readCUE compiles a CUE config and extracts the known fields.
func readCUE(path string) (fileConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return fileConfig{}, fmt.Errorf("invalid config: %v", err)
	}
	return parseCUE(v)
}
