// Package config loads the optional cminus.toml build profile, narrowing
// chai/src/mods's tomlModuleFile/tomlModule + github.com/pelletier/go-toml
// pattern down to what a one-file-in, one-file-out compiler needs: a log
// level and a default output path. C-minus has no dependency graph, no
// profiles-plural, and no build cache, so those concerns of mods are left
// unadapted (see DESIGN.md).
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const fileName = "cminus.toml"

// tomlProfile is cminus.toml as encoded in TOML.
type tomlProfile struct {
	LogLevel string `toml:"loglevel"`
	Output   string `toml:"output"`
}

// Profile is the resolved build configuration. Command-line flags parsed by
// olive always override a loaded Profile.
type Profile struct {
	LogLevel string
	Output   string
}

// Load looks for cminus.toml in dir. A missing file is not an error: Load
// returns the defaults (LogLevel: "verbose", empty Output), mirroring
// LoadModule's tolerance for an absent module file.
func Load(dir string) (*Profile, error) {
	p := &Profile{LogLevel: "verbose"}

	f, err := os.Open(filepath.Join(dir, fileName))
	if os.IsNotExist(err) {
		return p, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var tp tomlProfile
	if err := toml.Unmarshal(buf, &tp); err != nil {
		return nil, err
	}

	if tp.LogLevel != "" {
		p.LogLevel = tp.LogLevel
	}
	p.Output = tp.Output

	return p, nil
}
