package cli

// Version, Date and Copyright should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/demo-shell/cli.Version=1.2.3' -X 'github.com/flarebyte/demo-shell/cli.Date=2026-02-09'"
var (
	Version   string
	Date      string
	Copyright string
)
