package console

import (
	"bufio"
	"cashregister/internal/misc"
	"github.com/pkg/errors"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEndOfInput   = errors.New("end of input")
)

// Choice is a top-level menu selection. Number is meaningless when Quit is set.
type Choice struct {
	Number int
	Quit   bool
}

// MaxLineLength is the longest line the Reader accepts. Longer lines are skipped as invalid input.
const MaxLineLength = 64 * 1024

// Reader reads line-oriented console input.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func (r *Reader) readLine() (string, error) {
	var sb strings.Builder
	tooLong := false
	for {
		chunk, more, err := r.r.ReadLine()
		if err == io.EOF {
			if sb.Len() == 0 && !tooLong {
				return "", ErrEndOfInput
			}
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "error reading console input")
		}
		if !tooLong {
			if sb.Len()+len(chunk) > MaxLineLength {
				tooLong = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if !more {
			break
		}
	}
	if tooLong {
		return "", errors.Wrapf(ErrInvalidInput, "line longer than %d bytes", MaxLineLength)
	}
	return sb.String(), nil
}

// ReadInt reads one line and returns its first whitespace-separated token that parses as an integer.
func (r *Reader) ReadInt() (int, error) {
	line, err := r.readLine()
	if err != nil {
		return 0, err
	}
	return firstInt(line)
}

// ReadMenuChoice behaves like ReadInt, except that a leading "q" or "Q" token means quit.
func (r *Reader) ReadMenuChoice() (Choice, error) {
	line, err := r.readLine()
	if err != nil {
		return Choice{}, err
	}
	if fields := strings.Fields(line); len(fields) > 0 && strings.EqualFold(fields[0], "q") {
		return Choice{Quit: true}, nil
	}
	n, err := firstInt(line)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Number: n}, nil
}

func firstInt(line string) (int, error) {
	for _, token := range strings.Fields(line) {
		if n, err := strconv.Atoi(token); err == nil {
			return n, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidInput, "no number in %q", misc.StringLimit(line, 40))
}
