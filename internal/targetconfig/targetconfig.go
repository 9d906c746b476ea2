// Package targetconfig loads an evalctx.TargetProfile from a TOML
// descriptor and can optionally watch it for edits during a long-lived
// debugger session (SPEC_FULL.md §6, a domain addition: the Context's
// target description doesn't have to be hardcoded by the embedder).
package targetconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/dbgexpr/internal/evalctx"
)

// schemaConstraint is the range of profile schema versions this module
// understands. Bumping the profile format to an incompatible major
// version should fail loudly instead of silently mis-sizing literals.
var schemaConstraint = semver.MustParse("1.0.0")

// document mirrors the TOML shape documented in SPEC_FULL.md §6.
type document struct {
	SchemaVersion string `toml:"schema_version"`
	Name          string `toml:"name"`
	IntBits       int    `toml:"int_bits"`
	LongBits      int    `toml:"long_bits"`
	LongLongBits  int    `toml:"longlong_bits"`
}

// Load reads and validates a TargetProfile descriptor from path.
func Load(path string) (evalctx.TargetProfile, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return evalctx.TargetProfile{}, fmt.Errorf("targetconfig: %s: %w", path, err)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (evalctx.TargetProfile, error) {
	version, err := semver.NewVersion(doc.SchemaVersion)
	if err != nil {
		return evalctx.TargetProfile{}, fmt.Errorf("targetconfig: invalid schema_version %q: %w", doc.SchemaVersion, err)
	}
	if version.Major() != schemaConstraint.Major() {
		return evalctx.TargetProfile{}, fmt.Errorf("targetconfig: schema_version %s is incompatible with supported major version %d", doc.SchemaVersion, schemaConstraint.Major())
	}
	if doc.IntBits <= 0 || doc.LongBits <= 0 || doc.LongLongBits <= 0 {
		return evalctx.TargetProfile{}, fmt.Errorf("targetconfig: %s has a non-positive word width", doc.Name)
	}
	return evalctx.TargetProfile{
		Name:         doc.Name,
		IntBits:      doc.IntBits,
		LongBits:     doc.LongBits,
		LongLongBits: doc.LongLongBits,
	}, nil
}

// Watcher hot-reloads a TargetProfile descriptor on disk. It is inert
// until Start is called explicitly — most embedders load a profile once
// and never need this.
type Watcher struct {
	path     string
	onChange func(evalctx.TargetProfile)
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher builds a Watcher for path; onChange is invoked with the
// freshly reloaded profile whenever the file is written. Malformed
// reloads are skipped silently, keeping the last good profile live,
// rather than handing the embedder a zero-value TargetProfile mid-session.
func NewWatcher(path string, onChange func(evalctx.TargetProfile)) *Watcher {
	return &Watcher{path: path, onChange: onChange}
}

// Start begins watching. The caller must call Stop to release the
// underlying fsnotify watcher.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("targetconfig: watcher: %w", err)
	}
	if err := fsw.Add(w.path); err != nil {
		fsw.Close()
		return fmt.Errorf("targetconfig: watch %s: %w", w.path, err)
	}
	w.fsw = fsw
	w.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if profile, err := Load(w.path); err == nil {
					w.onChange(profile)
				}
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			case <-w.done:
				return
			}
		}
	}()
	return nil
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() error {
	if w.fsw == nil {
		return nil
	}
	close(w.done)
	return w.fsw.Close()
}
