// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}

// ExpandInputs joins --sequences values and positionals, expands globs in
// both, and drops repeats while keeping first-seen order. STDIN ("-") may
// appear only once.
func ExpandInputs(flagFiles, posArgs []string) ([]string, error) {
	all := make([]string, 0, len(flagFiles)+len(posArgs))
	all = append(all, flagFiles...)
	all = append(all, posArgs...)
	exp, err := ExpandPositionals(all)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(exp))
	out := exp[:0]
	for _, f := range exp {
		key := f
		if f != "-" {
			key = filepath.Clean(f)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out, nil
}
