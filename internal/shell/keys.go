package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// KeyReader returns a single key press. io.EOF means no key can arrive.
type KeyReader interface {
	ReadKey() (rune, error)
}

const (
	keyInterrupt = 0x03
	keyEOT       = 0x04
)

// NewKeyReader picks a raw single-key reader when in is a terminal and
// falls back to reading from buffered otherwise.
func NewKeyReader(in io.Reader, buffered *bufio.Reader) KeyReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return terminalKeys{f: f}
	}
	return lineKeys{r: buffered}
}

// terminalKeys switches the terminal to raw mode for exactly one key.
type terminalKeys struct {
	f *os.File
}

func (k terminalKeys) ReadKey() (rune, error) {
	fd := int(k.f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	var buf [utf8.UTFMax]byte
	if _, err := io.ReadFull(k.f, buf[:1]); err != nil {
		return 0, err
	}
	switch b := buf[0]; {
	case b == keyInterrupt || b == keyEOT:
		return 0, io.EOF
	case b < utf8.RuneSelf:
		return rune(b), nil
	}
	n := seqLen(buf[0])
	if _, err := io.ReadFull(k.f, buf[1:n]); err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r, nil
}

func seqLen(lead byte) int {
	switch {
	case lead >= 0xF0:
		return 4
	case lead >= 0xE0:
		return 3
	case lead >= 0xC0:
		return 2
	}
	return 1
}

// lineKeys reads a whole line and answers with its first character, so piped
// input such as "y\n" leaves nothing behind for the next prompt. A blank line
// answers '\n'.
type lineKeys struct {
	r *bufio.Reader
}

func (k lineKeys) ReadKey() (rune, error) {
	line, err := k.r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil {
			return 0, err
		}
		return '\n', nil
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r, nil
}
