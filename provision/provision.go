package provision

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	marecmd "github.com/femnad/mare/cmd"

	"github.com/femnad/linefix/entity"
	"github.com/femnad/linefix/internal"
	"github.com/femnad/linefix/patch"
)

type Provisioner struct {
	Config entity.Config
	DryRun bool
	// Defaults to stdout.
	Out io.Writer
}

func (p Provisioner) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func validate(linePatch entity.LinePatch) error {
	dir := filepath.Dir(linePatch.File)
	internal.Log.Debugf("Running validate command `%s` in %s", linePatch.Validate, dir)

	_, err := marecmd.RunFmtErr(marecmd.Input{Command: linePatch.Validate, Pwd: dir})
	if err != nil {
		return fmt.Errorf("validate command `%s` failed: %w", linePatch.Validate, err)
	}

	return nil
}

func (p Provisioner) apply(linePatch entity.LinePatch) error {
	in := patch.Input{
		File:        linePatch.File,
		Index:       linePatch.Index(),
		Replacement: linePatch.Content,
		DryRun:      p.DryRun,
	}

	if linePatch.Expect != "" {
		expect, err := regexp.Compile(linePatch.Expect)
		if err != nil {
			return err
		}
		in.Expect = expect
	}

	out, err := patch.Apply(in)
	if err != nil {
		return err
	}

	if p.DryRun {
		if !out.Changed {
			internal.Log.Infof("Line %d of %s is already up to date", linePatch.Line, linePatch.File)
			return nil
		}
		_, err = fmt.Fprintf(p.out(), "%s\n%s", linePatch.File, out.Diff)
		return err
	}

	if !out.Changed {
		internal.Log.Debugf("Line %d of %s was already up to date", linePatch.Line, linePatch.File)
	}

	if linePatch.Validate != "" {
		err = validate(linePatch)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(p.out(), "Fixed %s\n", linePatch.File)
	return err
}

// Apply runs the patches in order and stops at the first failure.
func (p Provisioner) Apply() error {
	for _, linePatch := range p.Config.Patches {
		internal.Log.Debugf("Applying patch %s", linePatch)
		err := p.apply(linePatch)
		if err != nil {
			return fmt.Errorf("error applying patch %s: %w", linePatch, err)
		}
	}

	return nil
}
