package patch

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/femnad/linefix/textfile"
)

func formatLine(prefix string, number int, line string) string {
	return fmt.Sprintf("%s%d %q\n", prefix, number, strings.TrimSuffix(line, "\n"))
}

// Diff renders the lines that would change if the line at index was replaced, quoted so that tabs are visible.
func Diff(lines []string, index int, replacement string) string {
	patched := make([]string, len(lines))
	copy(patched, lines)
	patched[index] = replacement

	dmp := diffmatchpatch.New()
	src, dst, lineArray := dmp.DiffLinesToChars(strings.Join(lines, ""), strings.Join(patched, ""))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineArray)

	var out strings.Builder
	oldLine, newLine := 1, 1
	for _, diff := range diffs {
		chunk := textfile.SplitLines(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += len(chunk)
			newLine += len(chunk)
		case diffmatchpatch.DiffDelete:
			for _, l := range chunk {
				out.WriteString(formatLine("-", oldLine, l))
				oldLine++
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range chunk {
				out.WriteString(formatLine("+", newLine, l))
				newLine++
			}
		}
	}

	return out.String()
}
