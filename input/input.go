// Package input reads user input from a stream or terminal.
//
// Reader covers plain buffered reads with an echoed message and prompt.
// Interactive wraps a line editor with history and completion for
// prompt-driven tools.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Bytes when the bytes read do not decode
// as UTF-8.
var ErrInvalidUTF8 = errors.New("input: bytes are not valid UTF-8")

// Reader reads from a buffered stream, echoing a message and prompt
// before each read. Message and prompt are separate arguments so callers
// can vary the message per question while keeping one prompt marker.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Reader bound to stdin and stdout.
func New() *Reader {
	return NewReader(os.Stdin, os.Stdout)
}

// NewReader returns a Reader reading from in and echoing prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line prints msg and prompt, then reads one line. The trailing newline
// is kept; trim with strings.TrimSpace if unwanted. A final unterminated
// line is returned without an error; io.EOF is reported only when
// nothing was read.
func (r *Reader) Line(msg, prompt string) (string, error) {
	if err := r.prompt(msg, prompt); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// All prints msg and prompt, then reads until end of input.
func (r *Reader) All(msg, prompt string) (string, error) {
	if err := r.prompt(msg, prompt); err != nil {
		return "", err
	}
	data, err := io.ReadAll(r.in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Bytes prints msg and prompt, then reads exactly n bytes. The byte
// count may exceed the returned string's character count when multibyte
// characters are involved. Returns ErrInvalidUTF8 when the bytes do not
// decode.
func (r *Reader) Bytes(n int, msg, prompt string) (string, error) {
	if err := r.prompt(msg, prompt); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.in, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

func (r *Reader) prompt(msg, prompt string) error {
	_, err := fmt.Fprintf(r.out, "%s%s", msg, prompt)
	return err
}
