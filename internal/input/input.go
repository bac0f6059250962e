// Package input reads puzzles and actions from text streams.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pizzacut/internal/pizza"
)

// ErrBadHeader indicates a header line that is not four integers.
var ErrBadHeader = errors.New("input: header must be \"R C L H\"")

// LineSource reads a puzzle and then one action per line from the same
// stream, so actions that follow the puzzle are not lost to read-ahead.
type LineSource struct {
	sc *bufio.Scanner
}

// NewLineSource wraps r.
func NewLineSource(r io.Reader) *LineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &LineSource{sc: sc}
}

// ReadPizza parses a header line "R C L H" followed by R rows of C cells
// from r. See LineSource.ReadPizza.
func ReadPizza(r io.Reader) (pizza.Config, error) {
	return NewLineSource(r).ReadPizza()
}

// ReadPizza parses a header line "R C L H" followed by R rows of C cells.
// Blank lines before the header are skipped. The result is validated.
func (s *LineSource) ReadPizza() (pizza.Config, error) {
	sc := s.sc
	var header string
	for sc.Scan() {
		if header = strings.TrimSpace(sc.Text()); header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return pizza.Config{}, fmt.Errorf("read header: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 4 {
		return pizza.Config{}, fmt.Errorf("%q: %w", header, ErrBadHeader)
	}
	var nums [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return pizza.Config{}, fmt.Errorf("%q: %w", header, ErrBadHeader)
		}
		nums[i] = n
	}
	rows, cols := nums[0], nums[1]
	if rows < 1 || rows > pizza.MaxDimension || cols < 1 || cols > pizza.MaxDimension {
		return pizza.Config{}, &pizza.ConfigError{Field: "header", Err: fmt.Errorf("R=%d C=%d: %w", rows, cols, pizza.ErrOutOfRange)}
	}

	cfg := pizza.Config{Lines: make([]string, 0, rows), L: nums[2], H: nums[3]}
	for len(cfg.Lines) < rows && sc.Scan() {
		cfg.Lines = append(cfg.Lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return pizza.Config{}, fmt.Errorf("read rows: %w", err)
	}
	if len(cfg.Lines) < rows {
		return pizza.Config{}, fmt.Errorf("expected %d rows, got %d: %w", rows, len(cfg.Lines), io.ErrUnexpectedEOF)
	}
	if got := cfg.Cols(); got != cols {
		return pizza.Config{}, &pizza.ConfigError{Field: "Lines", Err: fmt.Errorf("header says %d columns, row 0 has %d: %w", cols, got, pizza.ErrRaggedRows)}
	}
	if err := cfg.Validate(); err != nil {
		return pizza.Config{}, err
	}
	return cfg, nil
}

// Source yields actions until io.EOF.
type Source interface {
	Next() (string, error)
}

// Next returns the next non-blank line, trimmed.
func (s *LineSource) Next() (string, error) {
	for s.sc.Scan() {
		if line := strings.TrimSpace(s.sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// SliceSource replays a fixed list of actions.
type SliceSource struct {
	actions []string
}

// NewSliceSource returns a source over actions.
func NewSliceSource(actions ...string) *SliceSource {
	return &SliceSource{actions: actions}
}

// Next implements Source.
func (s *SliceSource) Next() (string, error) {
	if len(s.actions) == 0 {
		return "", io.EOF
	}
	next := s.actions[0]
	s.actions = s.actions[1:]
	return next, nil
}
