// Package listing renders directory contents as a bordered fixed-width
// table: subdirectories first, then files with their sizes.
package listing

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Columns holds the width of each table column in pad clusters.
type Columns struct {
	Name       int
	Attributes int
	Size       int
}

// Options configures a Lister.
type Options struct {
	Formatter        Formatter
	Columns          Columns
	RespectGitignore bool
	Logger           *zap.SugaredLogger
}

// Lister writes directory tables to an output stream.
type Lister struct {
	out       io.Writer
	fmt       Formatter
	cols      Columns
	gitignore bool
	log       *zap.SugaredLogger
	sizes     *message.Printer
}

// New returns a Lister writing to out.
func New(out io.Writer, opts Options) *Lister {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Lister{
		out:       out,
		fmt:       opts.Formatter,
		cols:      opts.Columns,
		gitignore: opts.RespectGitignore,
		log:       log,
		sizes:     message.NewPrinter(language.English),
	}
}

type entry struct {
	name    string
	path    string
	attrs   string
	size    int64
	isDir   bool
	symlink bool
}

// rowWriter keeps the first write error and drops later rows.
type rowWriter struct {
	w   io.Writer
	err error
}

func (r *rowWriter) line(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}

// List prints the table for dir. Enumeration failures are printed inside the
// table; the returned error only reports a failing output stream.
func (l *Lister) List(dir string, recursive bool) error {
	w := &rowWriter{w: l.out}
	var ig *ignoreMatcher
	if l.gitignore {
		ig = newIgnoreMatcher(dir)
	}
	l.table(w, dir, recursive, ig)
	return w.err
}

func (l *Lister) border() string {
	return l.fmt.BreakLine(l.cols.Name) + l.fmt.BreakLine(l.cols.Attributes) + l.fmt.BreakLine(l.cols.Size)
}

func (l *Lister) header() string {
	return l.fmt.AppendTab("File Name", l.cols.Name) +
		l.fmt.AppendTab("Attributes", l.cols.Attributes) +
		l.fmt.AppendTab("Size", l.cols.Size)
}

func (l *Lister) fileRow(e entry) string {
	return l.fmt.AppendTab(e.name, l.cols.Name) +
		l.fmt.AppendTab(e.attrs, l.cols.Attributes) +
		l.fmt.AppendTab(l.sizes.Sprintf("%d", e.size), l.cols.Size)
}

func (l *Lister) dirRow(e entry) string {
	return l.fmt.AppendTab(e.name, l.cols.Name) + l.fmt.AppendTab(e.attrs, l.cols.Attributes)
}

func (l *Lister) table(w *rowWriter, dir string, recursive bool, ig *ignoreMatcher) {
	br := l.border()
	w.line(br)
	w.line(l.header())
	w.line(br)
	if err := l.rows(w, dir, recursive, ig); err != nil {
		l.log.Debugw("listing failed", "dir", dir, "error", err)
		w.line(errorText(err))
	}
	w.line(br)
}

// rows prints the body of one table. In recursive mode every subdirectory
// contributes its files and then its own nested table before the current
// level's rows. The first enumeration error aborts the body.
func (l *Lister) rows(w *rowWriter, dir string, recursive bool, ig *ignoreMatcher) error {
	dirs, files, err := l.read(dir, ig)
	if err != nil {
		return err
	}
	if recursive {
		for _, d := range dirs {
			if d.symlink {
				continue
			}
			_, subFiles, err := l.read(d.path, ig)
			if err != nil {
				return err
			}
			for _, f := range subFiles {
				w.line(l.fileRow(f))
			}
			l.table(w, d.path, recursive, ig)
		}
	}
	for _, d := range dirs {
		w.line(l.dirRow(d))
	}
	for _, f := range files {
		w.line(l.fileRow(f))
	}
	return nil
}

// read enumerates dir, split into subdirectories and files, each in name
// order. Symlinks are classified by their target.
func (l *Lister) read(dir string, ig *ignoreMatcher) (dirs []entry, files []entry, err error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, de := range des {
		info, err := de.Info()
		if err != nil {
			return nil, nil, err
		}
		e := entry{
			name:    de.Name(),
			path:    filepath.Join(dir, de.Name()),
			size:    info.Size(),
			isDir:   info.IsDir(),
			symlink: info.Mode()&os.ModeSymlink != 0,
		}
		if e.symlink {
			if target, err := os.Stat(e.path); err == nil {
				e.isDir = target.IsDir()
				e.size = target.Size()
			}
		}
		if ig != nil && ig.Ignored(e.path, e.isDir) {
			continue
		}
		e.attrs = Attributes(e.name, info.Mode(), e.isDir)
		if e.isDir {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	return dirs, files, nil
}

func errorText(err error) string {
	s := strings.Join(strings.Fields(err.Error()), " ")
	if s == "" {
		return "error"
	}
	return s
}
