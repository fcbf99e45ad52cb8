package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// maxLineLength bounds a single answer; longer lines are read to the end and rejected.
const maxLineLength = 1024

var ErrInputClosed = errors.New("input stream closed")

// Reader reads moves typed as two integers on one line, e.g. "1 2" or "1,2".
type Reader struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
	}
}

// ReadMove - writes the prompt and parses the next line into a row and a column.
func (that *Reader) ReadMove(prompt string) (int, int, error) {
	if _, err := that.writer.WriteString(prompt); err != nil {
		return 0, 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	if err := that.writer.Flush(); err != nil {
		return 0, 0, fmt.Errorf("failed to flush prompt: %w", err)
	}

	line, err := that.readLine()
	if err != nil {
		return 0, 0, err
	}

	return ParseMove(line)
}

// readLine - returns the next line without its terminator. A line over
// maxLineLength is consumed in full and reported as malformed input.
func (that *Reader) readLine() (string, error) {
	var line []byte
	tooLong := false

	for {
		chunk, isPrefix, err := that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}

		if err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: line longer than %d bytes", apperror.ErrMalformedInput, maxLineLength)
	}

	return string(line), nil
}

// ParseMove - parses "row col" or "row,col" into two integers.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(strings.Replace(line, ",", " ", 1))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	return row, col, nil
}
