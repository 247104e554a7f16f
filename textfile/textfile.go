package textfile

import (
	"os"
	"strings"
)

const (
	lineTerminator = "\n"
	// Only used when the file doesn't exist yet, os.WriteFile keeps the mode of existing files.
	defaultFileMode = 0o644
)

// SplitLines splits content after each newline, keeping the terminators. A final line without a terminator is kept
// as is.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.SplitAfter(content, lineTerminator)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SplitLines(string(content)), nil
}

// WriteLines replaces the content of path with lines. There is no temp file or rename, a failure mid-write can leave
// the file truncated.
func WriteLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "")), defaultFileMode)
}
