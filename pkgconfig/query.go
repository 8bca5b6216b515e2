package pkgconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goplus/pkgconfig/pkgs/flags"
	"github.com/goplus/pkgconfig/pkgs/version"
	"github.com/qiniu/x/log"
)

// Exists reports whether pkg-config knows pkg.
func (c *Client) Exists(ctx context.Context, pkg string) (bool, error) {
	res, err := c.exec(ctx, append([]string{"--exists"}, strings.Fields(pkg)...)...)
	if err != nil {
		return false, err
	}
	return res.ExitCode == 0, nil
}

// Query runs pkg-config with arbitrary options about pkg and returns its
// trimmed output.
func (c *Client) Query(ctx context.Context, pkg string, options ...string) (string, error) {
	return c.output(ctx, pkg, options...)
}

// ModVersion returns the version of pkg.
func (c *Client) ModVersion(ctx context.Context, pkg string) (string, error) {
	return c.output(ctx, pkg, "--modversion")
}

// Installed reports whether pkg is installed in a version matching spec,
// e.g. ">= 1.2". A missing package is not an error.
func (c *Client) Installed(ctx context.Context, pkg, spec string) (bool, error) {
	ok, err := c.Exists(ctx, pkg)
	if err != nil || !ok {
		return false, err
	}
	s, err := version.ParseSpecifier(spec)
	if err != nil {
		return false, err
	}
	modversion, err := c.ModVersion(ctx, pkg)
	if err != nil {
		return false, err
	}
	ok, err = s.Match(c.policy, modversion)
	if err != nil {
		if errors.Is(err, version.ErrMalformedVersion) {
			return false, fmt.Errorf("%s is not a correct version specifier: %w", spec, err)
		}
		return false, err
	}
	log.Debugf("pkgconfig: %s %s (%s) satisfies %q: %v", pkg, modversion, c.policy, spec, ok)
	return ok, nil
}

// CFlags returns the compiler flags of pkg.
func (c *Client) CFlags(ctx context.Context, pkg string, opts ...QueryOption) (string, error) {
	return c.output(ctx, pkg, flagArgs(opts, "--cflags")...)
}

// Libs returns the linker flags of pkg.
func (c *Client) Libs(ctx context.Context, pkg string, opts ...QueryOption) (string, error) {
	return c.output(ctx, pkg, flagArgs(opts, "--libs")...)
}

// Requires returns the packages pkg depends on, one entry per line of
// --print-requires.
func (c *Client) Requires(ctx context.Context, pkg string) ([]string, error) {
	out, err := c.output(ctx, pkg, "--print-requires")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// Variable returns the value of one variable of the .pc file of pkg.
func (c *Client) Variable(ctx context.Context, pkg, name string) (string, error) {
	out, err := c.output(ctx, pkg, "--variable="+name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Variables returns every variable defined in the .pc file of pkg.
func (c *Client) Variables(ctx context.Context, pkg string) (map[string]string, error) {
	ok, err := c.Exists(ctx, pkg)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &PackageNotFoundError{Package: pkg}
	}
	out, err := c.output(ctx, pkg, "--print-variables")
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string)
	for _, name := range lines(out) {
		val, err := c.Variable(ctx, pkg, name)
		if err != nil {
			return nil, err
		}
		vars[name] = val
	}
	return vars, nil
}

// Parse returns the structured compiler and linker flags of packages, a
// space separated list of package names.
func (c *Client) Parse(ctx context.Context, packages string, opts ...QueryOption) (flags.FlagSet, error) {
	out, err := c.output(ctx, packages, flagArgs(opts, "--cflags", "--libs")...)
	if err != nil {
		return flags.FlagSet{}, err
	}
	return flags.Parse(out), nil
}

// ListAll returns the names of all packages pkg-config can find.
func (c *Client) ListAll(ctx context.Context) ([]string, error) {
	res, err := c.exec(ctx, "--list-all")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%s --list-all failed with exit code %d: %s",
			c.exe, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	var pkgs []string
	for _, line := range lines(res.Stdout) {
		if fields := strings.Fields(line); len(fields) > 0 {
			pkgs = append(pkgs, fields[0])
		}
	}
	return pkgs, nil
}

// lines splits s into its non-empty, trimmed lines.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
