// Package pkgconfig queries the pkg-config tool for the build metadata of
// native libraries: existence, versions, compiler and linker flags and .pc
// variables.
//
// A Client carries all configuration explicitly; it never reads PKG_CONFIG
// or PKG_CONFIG_PATH from the environment itself; callers fill the options,
// as cmd/pkgconf does.
package pkgconfig

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/goplus/pkgconfig/pkgs/runner"
	"github.com/goplus/pkgconfig/pkgs/version"
	"github.com/mattn/go-shellwords"
	"github.com/qiniu/x/log"
)

const (
	// DefaultExecutable is run when no executable is configured.
	DefaultExecutable = "pkg-config"
	// SearchPathVar is the variable WithSearchPath sets for the child.
	SearchPathVar = "PKG_CONFIG_PATH"
)

// Client runs pkg-config queries. It is immutable after New and safe for
// concurrent use.
type Client struct {
	exe        string
	exeArgs    []string
	searchPath []string
	env        []string
	policy     version.Policy
	run        runner.Runner
}

// Option configures a Client.
type Option func(*Client)

// WithExecutable replaces the default "pkg-config" executable. Like
// PKG_CONFIG, cmdline is split into shell words and the words after the
// first are passed before every query, e.g. "pkg-config --define-prefix".
// A cmdline without blanks, or one that does not split, is used as a
// single path.
func WithExecutable(cmdline string) Option {
	return func(c *Client) {
		if cmdline == "" {
			return
		}
		if !strings.ContainsAny(cmdline, " \t\n") {
			c.exe, c.exeArgs = cmdline, nil
			return
		}
		words, err := shellwords.Parse(cmdline)
		if err != nil || len(words) == 0 {
			log.Debugf("pkgconfig: %q is not a command line (%v), using it as a path", cmdline, err)
			c.exe, c.exeArgs = cmdline, nil
			return
		}
		c.exe, c.exeArgs = words[0], words[1:]
	}
}

// WithSearchPath sets PKG_CONFIG_PATH for every query.
func WithSearchPath(dirs ...string) Option {
	return func(c *Client) {
		c.searchPath = append([]string(nil), dirs...)
	}
}

// WithEnv adds "KEY=VALUE" entries to the environment of every query.
func WithEnv(kv ...string) Option {
	return func(c *Client) {
		c.env = append(c.env, kv...)
	}
}

// WithPolicy selects how installed versions are compared in Installed.
func WithPolicy(p version.Policy) Option {
	return func(c *Client) {
		c.policy = p
	}
}

// WithRunner replaces the command runner, mostly for tests.
func WithRunner(r runner.Runner) Option {
	return func(c *Client) {
		c.run = r
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{exe: DefaultExecutable}
	for _, opt := range opts {
		opt(c)
	}
	if c.run == nil {
		c.run = runner.New(c.exe)
	}
	return c
}

// Executable returns the pkg-config executable the client runs, without
// the leading arguments given to WithExecutable.
func (c *Client) Executable() string {
	return c.exe
}

// QueryOption adjusts a single flag query.
type QueryOption func(*query)

type query struct {
	static bool
}

// Static asks for the flags needed to link statically (--static).
func Static() QueryOption {
	return func(q *query) {
		q.static = true
	}
}

func (c *Client) childEnv() []string {
	kv := append([]string(nil), c.env...)
	if len(c.searchPath) > 0 {
		kv = append(kv, SearchPathVar+"="+strings.Join(c.searchPath, string(os.PathListSeparator)))
	}
	return kv
}

// exec runs pkg-config and maps a launch failure to ErrToolUnavailable.
func (c *Client) exec(ctx context.Context, args ...string) (runner.Result, error) {
	if len(c.exeArgs) > 0 {
		args = append(append([]string(nil), c.exeArgs...), args...)
	}
	log.Debugf("pkgconfig: %s %s", c.exe, strings.Join(args, " "))
	res, err := c.run.Run(ctx, args, c.childEnv())
	if err != nil {
		if errors.Is(err, runner.ErrNotFound) {
			return res, &ToolUnavailableError{Executable: c.exe, Err: err}
		}
		return res, err
	}
	return res, nil
}

// output runs pkg-config about pkg and returns its right-trimmed stdout.
// A non-zero exit becomes a *PackageNotFoundError.
func (c *Client) output(ctx context.Context, pkg string, args ...string) (string, error) {
	res, err := c.exec(ctx, append(args, strings.Fields(pkg)...)...)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", &PackageNotFoundError{Package: pkg, Stderr: strings.TrimSpace(res.Stderr)}
	}
	return strings.TrimRight(res.Stdout, " \t\r\n"), nil
}

func flagArgs(opts []QueryOption, args ...string) []string {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	if q.static {
		args = append(args, "--static")
	}
	return args
}
