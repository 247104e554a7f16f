package entity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LinePatch struct {
	Name    string `yaml:"name,omitempty"`
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Content string `yaml:"content"`
	// Regex the current line has to match before being replaced.
	Expect string `yaml:"expect,omitempty"`
	// Command to run in the directory of the file after it's patched.
	Validate string `yaml:"validate,omitempty"`
}

// Index returns the zero-based index of the 1-based Line.
func (p LinePatch) Index() int {
	return p.Line - 1
}

func (p LinePatch) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

type Config struct {
	Filename string      `yaml:"-"`
	Patches  []LinePatch `yaml:"patch"`
}

func UnmarshalConfig(filename string) (Config, error) {
	var config Config
	f, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil {
		return config, fmt.Errorf("error decoding config %s: %w", filename, err)
	}

	config.Filename = filename
	return config, nil
}
