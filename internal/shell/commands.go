package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/flarebyte/demo-shell/internal/buildinfo"
)

func (s *Shell) registerCommands() {
	s.commands.Register(Command{
		Name:        "list",
		Aliases:     []string{"li", "list"},
		Description: "Lists all files in the current directory.",
		Run:         runList,
	})
	s.commands.Register(Command{
		Name:        "help",
		Aliases:     []string{"h", "help"},
		Description: "Displays 'Help' contents.",
		Run:         runHelp,
	})
}

func runList(_ context.Context, s *Shell) error {
	dir, err := s.getwd()
	if err != nil {
		s.log.Warnw("working directory unavailable, listing '.'", "error", err)
		dir = "."
	}
	return s.lister.List(dir, s.cfg.List.Recursive)
}

func runHelp(_ context.Context, s *Shell) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Version %s\n", buildinfo.ProductName, buildinfo.ResolvedVersion())
	if c := buildinfo.ResolvedCopyright(); c != "" {
		fmt.Fprintln(&b, c)
	}
	fmt.Fprintln(&b, buildinfo.Comments)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Available commands:")
	fmt.Fprintln(&b)
	for _, c := range s.commands.Commands() {
		fmt.Fprintln(&b, s.fmt.AppendTab("", 2)+s.fmt.AppendTab(strings.Join(c.Aliases, ", "), 4)+s.fmt.AppendTab(c.Description, 0))
	}
	fmt.Fprintln(&b)
	_, err := fmt.Fprint(s.out, b.String())
	return err
}
