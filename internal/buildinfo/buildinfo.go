package buildinfo

import (
	"strings"

	"github.com/flarebyte/demo-shell/cli"
)

// Package buildinfo exposes version and product metadata for the CLI. Values
// can be overridden at build time via -ldflags. This package also honors
// values set in the cli package (cli.Version/cli.Date/cli.Copyright) for
// compatibility with external build scripts.

var (
	// Version is the semantic version or custom string. Defaults to cli.Version or "dev".
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""

	// ProductName is shown in the help banner.
	ProductName = "Demo"
	// Copyright is the legal line shown under the banner. Falls back to cli.Copyright.
	Copyright = ""
	// Comments is a short description shown under the copyright line.
	Comments = "Interactive option shell: list the working directory or show help."
)

// ResolvedVersion returns Version, then cli.Version, then "dev".
func ResolvedVersion() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return "dev"
}

// ResolvedCopyright returns Copyright, falling back to cli.Copyright.
func ResolvedCopyright() string {
	if Copyright != "" {
		return Copyright
	}
	return cli.Copyright
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := ResolvedVersion()

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
