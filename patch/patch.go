package patch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/femnad/linefix/textfile"
)

type OutOfRangeError struct {
	File  string
	Index int
	Lines int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("cannot replace line %d of %s, file has %d lines", e.Index+1, e.File, e.Lines)
}

type UnexpectedContentError struct {
	File   string
	Index  int
	Expect string
	Actual string
}

func (e UnexpectedContentError) Error() string {
	return fmt.Sprintf("line %d of %s is %q, expected it to match %q", e.Index+1, e.File, e.Actual, e.Expect)
}

type Input struct {
	File        string
	Index       int
	Replacement string
	// Optional, checked against the current line without its terminator.
	Expect *regexp.Regexp
	DryRun bool
}

type Output struct {
	Changed bool
	Diff    string
}

// Line replaces the line at zero-based index of file with replacement, leaving every other line untouched.
func Line(file string, index int, replacement string) error {
	_, err := Apply(Input{File: file, Index: index, Replacement: replacement})
	return err
}

// Apply reads all lines of the input file, checks the bounds and the optional expectation, then rewrites the whole
// file. Nothing is written unless every check passes. The write happens even when the line is already in place.
func Apply(in Input) (Output, error) {
	var out Output

	lines, err := textfile.ReadLines(in.File)
	if err != nil {
		return out, err
	}

	if in.Index < 0 || in.Index >= len(lines) {
		return out, OutOfRangeError{File: in.File, Index: in.Index, Lines: len(lines)}
	}

	current := lines[in.Index]
	if in.Expect != nil {
		actual := strings.TrimSuffix(current, "\n")
		if !in.Expect.MatchString(actual) {
			return out, UnexpectedContentError{
				File:   in.File,
				Index:  in.Index,
				Expect: in.Expect.String(),
				Actual: actual,
			}
		}
	}

	out.Changed = current != in.Replacement
	if in.DryRun {
		out.Diff = Diff(lines, in.Index, in.Replacement)
		return out, nil
	}

	lines[in.Index] = in.Replacement
	err = textfile.WriteLines(in.File, lines)
	if err != nil {
		return out, err
	}

	return out, nil
}
