// Package jsonl reads JSON Lines input one validated value at a time.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/tidwall/gjson"
)

// Reader yields lines of any length together with their 1-based line number.
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next line without its line terminator.
//
// A final line lacking a newline is still returned. io.EOF marks the end of input.
func (r *Reader) Next() ([]byte, error) {
	data, err := r.br.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(data) == 0 && errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	r.line++
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	return data, nil
}

// Line returns the number of the line last returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Handler processes one parsed line.
type Handler func(value gjson.Result) error

// Each calls fn for every line of src, in order.
//
// Lines that are not valid JSON fail with ErrParse. Failures from fn and
// from parsing are wrapped in a *LineError naming input and line. The
// context is checked between lines.
func Each(ctx context.Context, input string, src io.Reader, fn Handler) error {
	r := NewReader(src)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !gjson.ValidBytes(data) {
			return &LineError{Input: input, Line: r.Line(), Err: ErrParse}
		}
		if err := fn(gjson.ParseBytes(data)); err != nil {
			return &LineError{Input: input, Line: r.Line(), Err: err}
		}
	}
}
