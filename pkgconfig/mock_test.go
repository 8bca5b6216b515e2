package pkgconfig

import (
	"context"
	"strings"
	"sync"

	"github.com/goplus/pkgconfig/pkgs/runner"
)

// mockRunner implements runner.Runner for unit testing.
type mockRunner struct {
	runFunc func(ctx context.Context, args []string, env []string) (runner.Result, error)

	mu    sync.Mutex
	calls [][]string
	envs  [][]string
}

func (m *mockRunner) Run(ctx context.Context, args []string, env []string) (runner.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), args...))
	m.envs = append(m.envs, append([]string(nil), env...))
	m.mu.Unlock()
	if m.runFunc != nil {
		return m.runFunc(ctx, args, env)
	}
	return runner.Result{}, nil
}

// fakePkg describes a package known to fakeTool.
type fakePkg struct {
	version   string
	cflags    string
	libs      string
	static    string
	requires  string
	variables map[string]string
}

// fakeTool answers queries the way pkg-config does for the given packages.
func fakeTool(pkgs map[string]fakePkg) *mockRunner {
	return &mockRunner{runFunc: func(ctx context.Context, args []string, env []string) (runner.Result, error) {
		var opts, names []string
		for _, a := range args {
			if strings.HasPrefix(a, "--") {
				opts = append(opts, a)
			} else {
				names = append(names, a)
			}
		}

		if len(opts) == 1 && opts[0] == "--list-all" {
			var b strings.Builder
			for name := range pkgs {
				b.WriteString(name + "    " + name + " - fake package\n")
			}
			return runner.Result{Stdout: b.String()}, nil
		}

		for _, name := range names {
			if _, ok := pkgs[name]; !ok {
				return runner.Result{
					Stderr:   "Package " + name + " was not found in the pkg-config search path.\n",
					ExitCode: 1,
				}, nil
			}
		}

		static := false
		for _, o := range opts {
			if o == "--static" {
				static = true
			}
		}

		var out []string
		for _, name := range names {
			p := pkgs[name]
			for _, o := range opts {
				switch {
				case o == "--exists", o == "--static":
				case o == "--modversion":
					out = append(out, p.version)
				case o == "--cflags":
					out = append(out, p.cflags)
				case o == "--libs":
					if static && p.static != "" {
						out = append(out, p.static)
					} else {
						out = append(out, p.libs)
					}
				case o == "--print-requires":
					out = append(out, p.requires)
				case o == "--print-variables":
					for k := range p.variables {
						out = append(out, k+"\n")
					}
				case strings.HasPrefix(o, "--variable="):
					out = append(out, p.variables[strings.TrimPrefix(o, "--variable=")])
				}
			}
		}
		return runner.Result{Stdout: strings.Join(out, " ") + "\n"}, nil
	}}
}
