// Package config loads the optional mc.toml build profile, generalizing the
// teacher's per-directory module file (chai's depm.LoadModule) down to a
// single-file compiler: at most one small TOML document, next to the source
// file or named with -config, that overrides a handful of defaults. Its
// absence is not an error.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const FileName = "mc.toml"

// tomlProfile is the on-disk shape of mc.toml.
type tomlProfile struct {
	Out            string `toml:"out"`
	LogLevel       string `toml:"log-level"`
	WarningsAsErrs bool   `toml:"warnings-as-errors"`
}

// Profile is the resolved build profile after defaults are applied.
type Profile struct {
	Out            string
	LogLevel       string
	WarningsAsErrs bool
}

// Default returns the profile used when no mc.toml is found.
func Default() Profile {
	return Profile{
		Out:      "output.ll",
		LogLevel: "info",
	}
}

// Load resolves the build profile for a source file at srcPath. If
// explicitPath is non-empty it is read directly; otherwise mc.toml is looked
// up next to srcPath, and its absence falls back to Default() rather than
// failing.
func Load(srcPath, explicitPath string) (Profile, error) {
	profile := Default()

	path := explicitPath
	if path == "" {
		path = filepath.Join(filepath.Dir(srcPath), FileName)
	}

	f, err := os.Open(path)
	if err != nil {
		if explicitPath == "" && os.IsNotExist(err) {
			return profile, nil
		}
		return profile, err
	}
	defer f.Close()

	buf, err := ioutil.ReadAll(f)
	if err != nil {
		return profile, err
	}

	var tp tomlProfile
	if err := toml.Unmarshal(buf, &tp); err != nil {
		return profile, err
	}

	if tp.Out != "" {
		profile.Out = tp.Out
	}
	if tp.LogLevel != "" {
		profile.LogLevel = tp.LogLevel
	}
	profile.WarningsAsErrs = tp.WarningsAsErrs

	return profile, nil
}
