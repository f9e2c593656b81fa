// Package tsv loads CodiEsp gold standard, prediction and valid code files. Files are tab separated without a
// header. Every row of a file must have the column count of its format, otherwise the whole file is rejected.
package tsv

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

const (
	// CodeColumns is the number of columns of gold and prediction files for the D and P subtasks.
	CodeColumns = 2
	// SpanGoldColumns is the number of columns of gold files for the X subtask.
	SpanGoldColumns = 5
	// SpanPredictionColumns is the number of columns of prediction files for the X subtask.
	SpanPredictionColumns = 4
)

// FormatError is returned when a file does not have the expected format.
type FormatError struct {
	Name string
	Line int
	// Want and Got are column counts. Want is zero for errors which are not about the number of columns.
	Want int
	Got  int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Want > 0 {
		return fmt.Sprintf("%s:%d: expected %d columns, got %d; the file was not imported", e.Name, e.Line, e.Want, e.Got)
	}
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type row struct {
	line   int
	fields []string
}

// readRows reads the non-blank lines of r, checking each one has exactly columns fields.
// When columns is zero, rows only need one field.
func readRows(r io.Reader, name string, columns int) ([]row, error) {
	var rows []row
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimRight(s.Text(), "\r")
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		fields := strings.Split(text, "\t")
		if columns > 0 && len(fields) != columns {
			return nil, &FormatError{Name: name, Line: line, Want: columns, Got: len(fields)}
		}
		rows = append(rows, row{line: line, fields: fields})
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read %s", name)
	}
	return rows, nil
}

// readFile opens path and passes it to read.
func readFile(path string, read func(r io.Reader, name string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open input file")
	}
	defer f.Close()
	return read(f, path)
}
