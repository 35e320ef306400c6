package buildinfo

import (
	"testing"

	"github.com/flarebyte/demo-shell/cli"
)

func TestSummary(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	oldCliVersion, oldCliDate := cli.Version, cli.Date
	defer func() {
		Version, Commit, Date = oldVersion, oldCommit, oldDate
		cli.Version, cli.Date = oldCliVersion, oldCliDate
	}()

	cases := []struct {
		name    string
		version string
		commit  string
		date    string
		cliVer  string
		want    string
	}{
		{name: "empty falls back to dev", want: "dev"},
		{name: "cli version used", cliVer: "0.3.0", want: "0.3.0"},
		{name: "own version wins", version: "1.0.0", cliVer: "0.3.0", want: "1.0.0"},
		{name: "commit shortened", version: "1.0.0", commit: "0123456789abcdef", want: "1.0.0 (commit=0123456)"},
		{name: "commit and date", version: "1.0.0", commit: "abc", date: "2026-01-02", want: "1.0.0 (commit=abc, date=2026-01-02)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Version, Commit, Date = tc.version, tc.commit, tc.date
			cli.Version, cli.Date = tc.cliVer, ""
			if got := Summary(); got != tc.want {
				t.Fatalf("Summary() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolvedCopyright(t *testing.T) {
	oldCopyright, oldCli := Copyright, cli.Copyright
	defer func() { Copyright, cli.Copyright = oldCopyright, oldCli }()

	Copyright = ""
	cli.Copyright = "Copyright (c) 2026 Flarebyte"
	if got := ResolvedCopyright(); got != cli.Copyright {
		t.Fatalf("unexpected copyright: %q", got)
	}
	Copyright = "own"
	if got := ResolvedCopyright(); got != "own" {
		t.Fatalf("unexpected copyright: %q", got)
	}
}
