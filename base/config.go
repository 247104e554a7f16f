package base

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/femnad/mare"

	"github.com/femnad/linefix/entity"
)

const (
	defaultContent = "\t@mkdir -p $(BUILD_DIR)\n"
	defaultFile    = "Makefile"
	defaultLine    = 112
	defaultName    = "makefile-recipe-tab"
)

type patchKey struct {
	file string
	line int
}

// DefaultPatch is the Makefile recipe line that has to be indented with a tab.
func DefaultPatch() entity.LinePatch {
	return entity.LinePatch{
		Name:    defaultName,
		File:    defaultFile,
		Line:    defaultLine,
		Content: defaultContent,
	}
}

func DefaultConfig() entity.Config {
	return entity.Config{Patches: []entity.LinePatch{DefaultPatch()}}
}

func validatePatch(patch entity.LinePatch) error {
	var errs []error
	if patch.File == "" {
		errs = append(errs, fmt.Errorf("patch %s has no file", patch))
	}

	if patch.Line < 1 {
		errs = append(errs, fmt.Errorf("patch %s has invalid line %d, lines start from 1", patch, patch.Line))
	}

	content := patch.Content
	if !strings.HasSuffix(content, "\n") || strings.Count(content, "\n") != 1 {
		errs = append(errs, fmt.Errorf("patch %s content %q should be a single line ending with a newline", patch,
			content))
	}

	if patch.Expect != "" {
		_, err := regexp.Compile(patch.Expect)
		if err != nil {
			errs = append(errs, fmt.Errorf("patch %s has invalid expect regex: %w", patch, err))
		}
	}

	return errors.Join(errs...)
}

func Validate(config entity.Config) error {
	var errs []error
	seen := mapset.NewSet[patchKey]()
	for _, patch := range config.Patches {
		errs = append(errs, validatePatch(patch))

		if !seen.Add(patchKey{file: patch.File, line: patch.Line}) {
			errs = append(errs, fmt.Errorf("line %d of %s is patched more than once", patch.Line, patch.File))
		}
	}

	return errors.Join(errs...)
}

func ReadConfig(filename string) (entity.Config, error) {
	filename = mare.ExpandUser(filename)
	config, err := entity.UnmarshalConfig(filename)
	if err != nil {
		return config, err
	}

	for i, patch := range config.Patches {
		config.Patches[i].File = mare.ExpandUser(patch.File)
	}

	err = Validate(config)
	if err != nil {
		return config, err
	}

	return config, nil
}
