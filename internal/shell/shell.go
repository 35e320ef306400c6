// Package shell implements the interactive option loop: read a line, stop on
// a confirmed terminator keyword, otherwise split it into options and
// dispatch each one.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/flarebyte/demo-shell/internal/config"
	"github.com/flarebyte/demo-shell/internal/listing"
	"github.com/flarebyte/demo-shell/internal/options"
)

// Options wires a Shell to its streams and collaborators. Only In, Out and
// Config are required.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Config config.Config
	Logger *zap.SugaredLogger
	// Keys overrides the key reader picked from In.
	Keys KeyReader
	// Getwd overrides os.Getwd for the list command.
	Getwd func() (string, error)
}

// Shell is one interactive session.
type Shell struct {
	cfg      config.Config
	in       *bufio.Reader
	keys     KeyReader
	out      io.Writer
	log      *zap.SugaredLogger
	fmt      listing.Formatter
	lister   *listing.Lister
	commands *registry
	getwd    func() (string, error)

	notice *color.Color
	alert  *color.Color
	bye    *color.Color
}

// New builds a Shell and registers the command table.
func New(opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	in := bufio.NewReader(opts.In)
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyReader(opts.In, in)
	}
	getwd := opts.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	cfg := opts.Config
	f := listing.Formatter{PadLength: cfg.Layout.PadLength, Truncation: cfg.Layout.Truncation}

	s := &Shell{
		cfg:  cfg,
		in:   in,
		keys: keys,
		out:  opts.Out,
		log:  log,
		fmt:  f,
		lister: listing.New(opts.Out, listing.Options{
			Formatter: f,
			Columns: listing.Columns{
				Name:       cfg.Layout.NameColumns,
				Attributes: cfg.Layout.AttributeColumns,
				Size:       cfg.Layout.SizeColumns,
			},
			RespectGitignore: cfg.List.RespectGitignore,
			Logger:           log,
		}),
		commands: newRegistry(),
		getwd:    getwd,
		notice:   newColor(cfg.Color, color.FgYellow),
		alert:    newColor(cfg.Color, color.FgRed),
		bye:      newColor(cfg.Color, color.FgGreen),
	}
	s.registerCommands()
	return s
}

func newColor(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Run processes args once when any are given and returns. Without args it
// prompts for lines until a terminator is confirmed or input ends. Both
// endings return nil.
func (s *Shell) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		s.log.Debugw("running startup options once", "args", args)
		return s.Dispatch(ctx, args)
	}
	s.log.Debugw("interactive session started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, readErr := s.readLine()
		eof := errors.Is(readErr, io.EOF)
		if readErr != nil && !eof {
			return readErr
		}
		if line != "" {
			done, err := s.handleLine(ctx, line)
			if err != nil || done {
				return err
			}
		}
		if eof {
			s.log.Debugw("input closed, ending session")
			_, err := fmt.Fprintln(s.out)
			return err
		}
	}
}

func (s *Shell) handleLine(ctx context.Context, line string) (done bool, err error) {
	if s.cfg.IsTerminator(line) {
		return s.confirmExit(ctx)
	}
	return false, s.Dispatch(ctx, options.Tokenize(line))
}

// readLine prints the prompt and returns the next trimmed line. A final line
// without a newline is returned together with io.EOF.
func (s *Shell) readLine() (string, error) {
	if _, err := fmt.Fprintf(s.out, "%s ", s.cfg.Prompt); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

// Dispatch runs the deduplicated tokens in order. Unknown tokens print a
// diagnostic and do not stop the rest.
func (s *Shell) Dispatch(ctx context.Context, tokens []string) error {
	for _, tok := range options.Dedupe(tokens) {
		name, ok := options.Name(tok)
		if !ok {
			if err := s.notRecognized(tok); err != nil {
				return err
			}
			continue
		}
		cmd, err := s.commands.Lookup(name)
		if err != nil {
			s.log.Debugw("unknown option", "token", tok, "error", err)
			if err := s.notRecognized("-" + name); err != nil {
				return err
			}
			continue
		}
		s.log.Debugw("dispatch", "token", tok, "command", cmd.Name)
		if err := cmd.Run(ctx, s); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name, err)
		}
	}
	return nil
}

func (s *Shell) notRecognized(tok string) error {
	_, err := s.notice.Fprintf(s.out, "'%s' is currently not recognized by this cmd tool.\n", tok)
	return err
}

// pause waits for d unless ctx ends first.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
