// Package testsupport adapts the host compiler's snapshot-testing
// utility into a golden-file comparator for dbgexpr's diagnostics: the
// byte-exact caret format (internal/diag) is exactly the kind of output
// Design Notes recommends pinning with "a dedicated formatter function
// with golden tests."
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GoldenOptions controls golden-file comparison behavior.
type GoldenOptions struct {
	BaseDir string
	Update  bool
}

// DefaultGoldenOptions points at the conventional testdata/golden
// directory and never auto-updates — a test run only ever overwrites a
// golden file when Update is explicitly set (see UpdateFromEnv).
func DefaultGoldenOptions() GoldenOptions {
	return GoldenOptions{BaseDir: "testdata/golden", Update: false}
}

// UpdateFromEnv reports whether DBGEXPR_UPDATE_GOLDEN=1 is set, the
// convention this module's tests use instead of a custom `go test` flag
// (golden-file regeneration is rare enough not to need its own flag
// wired through every _test.go's TestMain).
func UpdateFromEnv() bool {
	return os.Getenv("DBGEXPR_UPDATE_GOLDEN") == "1"
}

// GoldenManager compares actual output against files under BaseDir.
type GoldenManager struct {
	options GoldenOptions
}

// NewGoldenManager creates a manager with the given options.
func NewGoldenManager(options GoldenOptions) *GoldenManager {
	return &GoldenManager{options: options}
}

// Verify checks actual against the golden file for name (sanitized into
// a filesystem-safe path under BaseDir). When Update is set, a missing or
// differing golden file is written and Verify succeeds — this is how a
// new golden case or an intentional format change gets recorded. Without
// Update, a missing golden file is an error.
func (gm *GoldenManager) Verify(name, actual string) error {
	path := gm.pathFor(name)

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if !gm.options.Update {
			return fmt.Errorf("testsupport: golden file %s does not exist (set DBGEXPR_UPDATE_GOLDEN=1 to create it)", path)
		}
		return gm.write(path, actual)
	}
	if err != nil {
		return fmt.Errorf("testsupport: reading golden file %s: %w", path, err)
	}

	if string(expected) == actual {
		return nil
	}
	if gm.options.Update {
		return gm.write(path, actual)
	}
	return fmt.Errorf("testsupport: golden mismatch for %s:\n%s", name, diffLines(string(expected), actual))
}

func (gm *GoldenManager) write(path, actual string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("testsupport: creating golden directory: %w", err)
	}
	return os.WriteFile(path, []byte(actual), 0o644)
}

func (gm *GoldenManager) pathFor(name string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_").Replace(name)
	return filepath.Join(gm.options.BaseDir, safe+".golden")
}

// diffLines renders a minimal line-oriented diff for failure messages.
func diffLines(expected, actual string) string {
	exp := strings.Split(expected, "\n")
	act := strings.Split(actual, "\n")
	var b strings.Builder
	max := len(exp)
	if len(act) > max {
		max = len(act)
	}
	for i := 0; i < max; i++ {
		var e, a string
		if i < len(exp) {
			e = exp[i]
		}
		if i < len(act) {
			a = act[i]
		}
		if e != a {
			fmt.Fprintf(&b, "line %d:\n  expected: %q\n  actual:   %q\n", i+1, e, a)
		}
	}
	return b.String()
}
