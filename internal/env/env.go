package env

import (
	"os"
	"path/filepath"

	"github.com/goplus/pkgconfig/pkgconfig"
)

// ExecutableVar holds the pkg-config command line, possibly with leading
// arguments ("pkg-config --define-prefix").
const ExecutableVar = "PKG_CONFIG"

// Config is the part of the process environment that affects pkg-config.
type Config struct {
	// Executable is a command line, split by pkgconfig.WithExecutable.
	Executable string
	SearchPath []string
}

// Lookup reads the configuration through getenv, typically os.Getenv.
func Lookup(getenv func(string) string) Config {
	c := Config{Executable: getenv(ExecutableVar)}
	if c.Executable == "" {
		c.Executable = pkgconfig.DefaultExecutable
	}
	c.SearchPath = SplitList(getenv(pkgconfig.SearchPathVar))
	return c
}

// FromOS reads the configuration of the current process.
func FromOS() Config {
	return Lookup(os.Getenv)
}

// SplitList splits a PKG_CONFIG_PATH style list, dropping empty entries.
func SplitList(s string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(s) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
