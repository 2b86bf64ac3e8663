// Package manifest handles cozputer.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// VoiceConsole prints speech to stdout; VoiceSilent discards it.
const (
	VoiceConsole = "console"
	VoiceSilent  = "silent"
)

// Manifest represents a cozputer.toml project configuration.
type Manifest struct {
	VM     VMConfig     `toml:"vm"`
	Speech SpeechConfig `toml:"speech"`

	// Dir is the directory containing the cozputer.toml file (set at load time).
	Dir string `toml:"-"`
}

// VMConfig configures the virtual machine.
type VMConfig struct {
	Trace bool `toml:"trace"`
}

// SpeechConfig configures the speech actuator.
type SpeechConfig struct {
	Voice  string `toml:"voice"`  // console | silent
	Prefix string `toml:"prefix"` // Prepended to everything said
}

// Default returns the configuration used when no cozputer.toml exists.
func Default() *Manifest {
	return &Manifest{
		Speech: SpeechConfig{Voice: VoiceConsole},
	}
}

// Load parses a cozputer.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "cozputer.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Speech.Voice == "" {
		m.Speech.Voice = VoiceConsole
	}

	switch m.Speech.Voice {
	case VoiceConsole, VoiceSilent:
	default:
		return nil, fmt.Errorf("%s: unknown voice %q", path, m.Speech.Voice)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a cozputer.toml file,
// then loads and returns the manifest. Returns the defaults if no
// manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "cozputer.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return Default(), nil
		}
		dir = parent
	}
}
