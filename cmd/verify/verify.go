package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/femnad/linefix/entity"
	"github.com/femnad/linefix/textfile"
)

const (
	indentChars = " \t"
)

func ensureLine(linePatch entity.LinePatch) error {
	file := linePatch.File
	lines, err := textfile.ReadLines(file)
	if err != nil {
		return err
	}

	index := linePatch.Index()
	if index < 0 || index >= len(lines) {
		return fmt.Errorf("%s has %d lines, expected at least %d", file, len(lines), linePatch.Line)
	}

	actual := lines[index]
	want := linePatch.Content
	if actual == want {
		return nil
	}

	if strings.TrimLeft(actual, indentChars) == strings.TrimLeft(want, indentChars) {
		return fmt.Errorf("line %d of %s has incorrect indentation, expected: %q, actual: %q", linePatch.Line, file,
			want, actual)
	}

	return fmt.Errorf("line %d of %s doesn't have expected content, expected: %q, actual: %q", linePatch.Line, file,
		want, actual)
}

// Verify checks that every patch in config is in place and reports all mismatches.
func Verify(config entity.Config) error {
	var errs []error
	for _, linePatch := range config.Patches {
		err := ensureLine(linePatch)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
