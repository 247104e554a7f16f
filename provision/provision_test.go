package provision

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/femnad/linefix/entity"
	"github.com/femnad/linefix/patch"
)

const (
	makefileContent = `BUILD_DIR := build

all:
    @mkdir -p $(BUILD_DIR)
	cc -o $(BUILD_DIR)/app main.c
`
	patchedContent = `BUILD_DIR := build

all:
	@mkdir -p $(BUILD_DIR)
	cc -o $(BUILD_DIR)/app main.c
`
	recipe = "\t@mkdir -p $(BUILD_DIR)\n"
)

func TestProvisioner_Apply(t *testing.T) {
	tests := []struct {
		name     string
		patch    entity.LinePatch
		dryRun   bool
		want     string
		wantOut  string
		wantErr  bool
		rangeErr bool
	}{
		{
			name:    "Fix recipe line",
			patch:   entity.LinePatch{Line: 4, Content: recipe},
			want:    patchedContent,
			wantOut: "Fixed %s\n",
		},
		{
			name:    "Dry run",
			patch:   entity.LinePatch{Line: 4, Content: recipe},
			dryRun:  true,
			want:    makefileContent,
			wantOut: "%s\n-4 \"    @mkdir -p $(BUILD_DIR)\"\n+4 \"\\t@mkdir -p $(BUILD_DIR)\"\n",
		},
		{
			name:    "Expectation met",
			patch:   entity.LinePatch{Line: 4, Content: recipe, Expect: `^\s+@mkdir -p`},
			want:    patchedContent,
			wantOut: "Fixed %s\n",
		},
		{
			name:    "Expectation not met",
			patch:   entity.LinePatch{Line: 5, Content: recipe, Expect: `@mkdir`},
			want:    makefileContent,
			wantErr: true,
		},
		{
			name:     "Line out of range",
			patch:    entity.LinePatch{Line: 112, Content: recipe},
			want:     makefileContent,
			wantErr:  true,
			rangeErr: true,
		},
		{
			name:    "Validate succeeds",
			patch:   entity.LinePatch{Line: 4, Content: recipe, Validate: "true"},
			want:    patchedContent,
			wantOut: "Fixed %s\n",
		},
		{
			name:    "Validate fails",
			patch:   entity.LinePatch{Line: 4, Content: recipe, Validate: "false"},
			want:    patchedContent,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := path.Join(t.TempDir(), "Makefile")
			err := os.WriteFile(file, []byte(makefileContent), 0o644)
			if err != nil {
				t.Fatalf("error writing file content for %s: %v", file, err)
			}

			tt.patch.File = file
			var out bytes.Buffer
			p := Provisioner{
				Config: entity.Config{Patches: []entity.LinePatch{tt.patch}},
				DryRun: tt.dryRun,
				Out:    &out,
			}

			err = p.Apply()
			if (err != nil) != tt.wantErr {
				t.Errorf("Apply() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.rangeErr {
				var rangeErr patch.OutOfRangeError
				if !errors.As(err, &rangeErr) {
					t.Errorf("Apply() error = %v, want OutOfRangeError", err)
				}
			}

			got, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("error reading file %s: %v", file, err)
			}
			if string(got) != tt.want {
				t.Errorf("Wanted `%s`, got `%s`", tt.want, string(got))
			}

			if tt.wantOut != "" {
				wantOut := fmt.Sprintf(tt.wantOut, file)
				if out.String() != wantOut {
					t.Errorf("Apply() output = %q, want %q", out.String(), wantOut)
				}
			}
		})
	}
}

func TestProvisioner_ApplyStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	short := path.Join(dir, "short.mk")
	full := path.Join(dir, "Makefile")
	for file, content := range map[string]string{short: "all:\n", full: makefileContent} {
		err := os.WriteFile(file, []byte(content), 0o644)
		if err != nil {
			t.Fatalf("error writing file content for %s: %v", file, err)
		}
	}

	var out bytes.Buffer
	p := Provisioner{
		Config: entity.Config{Patches: []entity.LinePatch{
			{File: short, Line: 4, Content: recipe},
			{File: full, Line: 4, Content: recipe},
		}},
		Out: &out,
	}

	err := p.Apply()
	if err == nil {
		t.Fatal("Apply() expected error for short file")
	}

	got, err := os.ReadFile(full)
	if err != nil {
		t.Fatalf("error reading file %s: %v", full, err)
	}
	if string(got) != makefileContent {
		t.Errorf("Apply() continued after a failed patch")
	}
	if out.Len() != 0 {
		t.Errorf("Apply() output = %q, want none", out.String())
	}
}
