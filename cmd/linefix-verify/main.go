package main

import (
	"github.com/alexflint/go-arg"

	"github.com/femnad/linefix/base"
	"github.com/femnad/linefix/cmd/verify"
	"github.com/femnad/linefix/internal"
)

type args struct {
	File     string `arg:"-f,--file" help:"Patch config file path, the built-in Makefile patch is verified if not set"`
	LogLevel int    `arg:"-l,--loglevel" default:"4"`
}

func main() {
	var parsed args
	arg.MustParse(&parsed)
	internal.InitLogging(parsed.LogLevel)

	config := base.DefaultConfig()
	if parsed.File != "" {
		var err error
		config, err = base.ReadConfig(parsed.File)
		if err != nil {
			internal.Log.Fatalf("error reading config: %v", err)
		}
	}

	err := verify.Verify(config)
	if err != nil {
		internal.Log.Fatalf("Error during verification: %v", err)
	}

	internal.Log.Infof("Verified %d line patch(es)", len(config.Patches))
}
