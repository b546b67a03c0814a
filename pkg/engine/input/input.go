package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrClosed is returned once the underlying reader has no more lines.
var ErrClosed = errors.New("input closed")

// Source supplies one line of player input at a time.
type Source interface {
	ReadLine() (string, error)
}

// LineReader reads newline-terminated lines from any io.Reader.
type LineReader struct {
	r *bufio.Reader
}

// NewReader wraps r in a LineReader
func NewReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Stdin returns a LineReader over the process's standard input.
func Stdin() *LineReader {
	return NewReader(os.Stdin)
}

// ReadLine blocks until a full line is available and returns it without the line ending.
// A final unterminated line is still returned; after that ErrClosed is reported.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", ErrClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
