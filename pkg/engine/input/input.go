package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned once the underlying reader is exhausted.
var ErrClosed = errors.New("input closed")

// LineReader reads newline-terminated lines from a stream.
type LineReader struct {
	mu     sync.Mutex
	reader *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending. A final line with
// no trailing newline is still returned; after that ReadLine returns ErrClosed.
func (l *LineReader) ReadLine() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrClosed
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
