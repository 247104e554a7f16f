package integration

import (
	"fmt"
	"os"
	"path"

	"github.com/femnad/mare"
	marecmd "github.com/femnad/mare/cmd"
	"gopkg.in/yaml.v3"

	"github.com/femnad/linefix/entity"
)

func writeConfig(cfg entity.Config, configFile string) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, out, 0o600)
}

func binPath(name string) string {
	goPath := os.Getenv("GOPATH")
	if goPath == "" {
		goPath = mare.ExpandUser("~/go")
	}
	return path.Join(goPath, "bin", name)
}

func runLinefix(dir, extraArgs string) (marecmd.Output, error) {
	cmd := fmt.Sprintf("%s %s", binPath("linefix"), extraArgs)
	return marecmd.RunFmtErr(marecmd.Input{Command: cmd, Pwd: dir})
}

func runVerify(dir, configFile string) (marecmd.Output, error) {
	cmd := fmt.Sprintf("%s -f %s", binPath("linefix-verify"), configFile)
	return marecmd.RunFmtErr(marecmd.Input{Command: cmd, Pwd: dir})
}
