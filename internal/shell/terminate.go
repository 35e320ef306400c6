package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"
)

// confirmExit asks until it gets Y or N. done is true when the session
// should end. Running out of input counts as Y.
func (s *Shell) confirmExit(ctx context.Context) (done bool, err error) {
	for {
		if _, err := fmt.Fprintln(s.out, "Continue on exit? (Y/N)"); err != nil {
			return false, err
		}
		key, err := s.keys.ReadKey()
		switch {
		case errors.Is(err, io.EOF):
			key = 'Y'
		case err != nil:
			return false, err
		}
		if err := s.echoKey(key); err != nil {
			return false, err
		}
		switch unicode.ToUpper(key) {
		case 'Y':
			s.log.Debugw("exit confirmed")
			if _, err := s.bye.Fprintln(s.out, "Goodbye!"); err != nil {
				return false, err
			}
			pause(ctx, s.cfg.FarewellDelay)
			return true, nil
		case 'N':
			s.log.Debugw("exit aborted")
			return false, nil
		}
		if _, err := s.alert.Fprintln(s.out, "Invalid input!"); err != nil {
			return false, err
		}
	}
}

func (s *Shell) echoKey(key rune) error {
	var err error
	if unicode.IsPrint(key) {
		_, err = fmt.Fprintf(s.out, "%c\n", key)
	} else {
		_, err = fmt.Fprintln(s.out)
	}
	return err
}
