// Package runner runs an external command and captures its output and exit
// status.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/qiniu/x/log"
	"golang.org/x/sys/execabs"
)

// ErrNotFound is returned when the executable cannot be located or started.
var ErrNotFound = errors.New("executable not found")

// Result is the captured outcome of one command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs the metadata tool with the given arguments. env entries
// ("KEY=VALUE") are added to the current process environment. A non-zero
// exit status is reported in Result.ExitCode, not as an error.
type Runner interface {
	Run(ctx context.Context, args []string, env []string) (Result, error)
}

// Exec runs a real executable.
type Exec struct {
	exe string
}

// New returns a Runner for exe, which may be a bare name looked up in PATH
// or a path.
func New(exe string) *Exec {
	return &Exec{exe: exe}
}

func (e *Exec) Run(ctx context.Context, args []string, env []string) (Result, error) {
	path, err := execabs.LookPath(e.exe)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", e.exe, errors.Join(ErrNotFound, err))
	}

	cmd := execabs.CommandContext(ctx, path, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("runner: %s %s", path, strings.Join(args, " "))
	err = cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *execabs.ExitError
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return res, ctx.Err()
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("%s: %w", e.exe, errors.Join(ErrNotFound, err))
	}
	log.Debugf("runner: exit %d", res.ExitCode)
	return res, nil
}
