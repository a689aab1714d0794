// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func goList(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list (%s): %v", dir, err)
	}
	dec := json.NewDecoder(&out)
	var pkgs []pkg
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

// within reports whether path is pkg itself or below it.
func within(path, pkg string) bool {
	return path == pkg || strings.HasPrefix(path, strings.TrimSuffix(pkg, "/")+"/")
}

func TestImportBoundaries(t *testing.T) {
	upper := []string{
		"sixframe/internal/appcore", "sixframe/internal/app", "sixframe/internal/appshell",
		"sixframe/internal/cli", "sixframe/internal/config", "sixframe/cmd/",
	}
	bans := map[string][]string{
		"sixframe/internal/pipeline": upper,
		"sixframe/internal/writers":  append([]string{"sixframe/internal/pipeline"}, upper...),
		"sixframe/internal/output":   append([]string{"sixframe/internal/pipeline", "sixframe/internal/writers"}, upper...),
		"sixframe/pkg/api":           {"sixframe/"},
	}

	var violations []string
	for _, p := range goList(t, "../..") {
		if !strings.HasPrefix(p.ImportPath, "sixframe/") {
			continue
		}
		for owner, forbidden := range bans {
			if !within(p.ImportPath, owner) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if within(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// core never reaches back into the command module; alphabet is a leaf.
func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range goList(t, "../../core") {
		for _, dep := range p.Imports {
			if within(dep, "sixframe") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
			if p.ImportPath == "sixframe-core/alphabet" && strings.HasPrefix(dep, "sixframe-core/") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core import violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
