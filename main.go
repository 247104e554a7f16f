package main

import (
	"github.com/alexflint/go-arg"

	"github.com/femnad/linefix/base"
	"github.com/femnad/linefix/entity"
	"github.com/femnad/linefix/internal"
	"github.com/femnad/linefix/provision"
)

type args struct {
	File     string `arg:"-f,--file" help:"Patch config file path, replaces the built-in Makefile patch"`
	Target   string `arg:"-t,--target" help:"File for the built-in patch"`
	Line     int    `arg:"-n,--line" help:"1-based line number for the built-in patch"`
	DryRun   bool   `arg:"-d,--dry-run" help:"Show what would change without writing"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
}

func (args) Version() string {
	return "linefix 0.1.0"
}

func getConfig(parsed args) (entity.Config, error) {
	if parsed.File != "" {
		return base.ReadConfig(parsed.File)
	}

	linePatch := base.DefaultPatch()
	linePatch.File = parsed.Target
	linePatch.Line = parsed.Line
	config := entity.Config{Patches: []entity.LinePatch{linePatch}}

	return config, base.Validate(config)
}

func main() {
	defaultPatch := base.DefaultPatch()
	parsed := args{Target: defaultPatch.File, Line: defaultPatch.Line}
	arg.MustParse(&parsed)
	internal.InitLogging(parsed.LogLevel)

	config, err := getConfig(parsed)
	if err != nil {
		internal.Log.Fatalf("%v", err)
	}

	p := provision.Provisioner{Config: config, DryRun: parsed.DryRun}
	err = p.Apply()
	if err != nil {
		internal.Log.Fatalf("%v", err)
	}
}
