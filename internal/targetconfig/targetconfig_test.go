package targetconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orizon-lang/dbgexpr/internal/evalctx"
)

func writeProfile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "profile.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadValidProfile(t *testing.T) {
	path := writeProfile(t, t.TempDir(), `
schema_version = "1.0.0"
name = "lp64"
int_bits = 32
long_bits = 64
longlong_bits = 64
`)
	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := evalctx.TargetProfile{Name: "lp64", IntBits: 32, LongBits: 64, LongLongBits: 64}
	if profile != want {
		t.Errorf("Load() = %+v, want %+v", profile, want)
	}
}

func TestLoadRejectsIncompatibleMajorVersion(t *testing.T) {
	path := writeProfile(t, t.TempDir(), `
schema_version = "2.0.0"
name = "lp64"
int_bits = 32
long_bits = 64
longlong_bits = 64
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for schema_version 2.0.0")
	}
}

func TestLoadRejectsNonPositiveWidth(t *testing.T) {
	path := writeProfile(t, t.TempDir(), `
schema_version = "1.0.0"
name = "broken"
int_bits = 0
long_bits = 64
longlong_bits = 64
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for int_bits = 0")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, `
schema_version = "1.0.0"
name = "initial"
int_bits = 32
long_bits = 32
longlong_bits = 64
`)

	reloaded := make(chan evalctx.TargetProfile, 1)
	w := NewWatcher(path, func(p evalctx.TargetProfile) { reloaded <- p })
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte(`
schema_version = "1.0.0"
name = "updated"
int_bits = 32
long_bits = 64
longlong_bits = 64
`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case profile := <-reloaded:
		if profile.Name != "updated" {
			t.Errorf("reloaded profile = %+v, want Name=updated", profile)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher reload")
	}
}
