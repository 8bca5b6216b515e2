package pkgconfig

import (
	"errors"
	"fmt"

	"github.com/goplus/pkgconfig/pkgs/version"
)

var (
	// ErrToolUnavailable is matched when pkg-config cannot be located or
	// started.
	ErrToolUnavailable = errors.New("pkg-config is not installed")
	// ErrPackageNotFound is matched when pkg-config does not know a package.
	ErrPackageNotFound = errors.New("package not found")
)

// ToolUnavailableError wraps the launch failure of the executable.
type ToolUnavailableError struct {
	Executable string
	Err        error
}

func (e *ToolUnavailableError) Error() string {
	return fmt.Sprintf("%s is not installed: %v", e.Executable, e.Err)
}

func (e *ToolUnavailableError) Unwrap() error { return e.Err }

func (e *ToolUnavailableError) Is(target error) bool { return target == ErrToolUnavailable }

// PackageNotFoundError reports a non-zero exit of a query about Package.
type PackageNotFoundError struct {
	Package string
	// Stderr is what pkg-config printed, trimmed.
	Stderr string
}

func (e *PackageNotFoundError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("package %q not found: %s", e.Package, e.Stderr)
	}
	return fmt.Sprintf("package %q not found", e.Package)
}

func (e *PackageNotFoundError) Is(target error) bool { return target == ErrPackageNotFound }

// ErrorKind classifies the errors returned by Client.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindToolUnavailable
	KindPackageNotFound
	KindMalformedVersion
	KindMalformedSpecifier
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindToolUnavailable:
		return "tool unavailable"
	case KindPackageNotFound:
		return "package not found"
	case KindMalformedVersion:
		return "malformed version"
	case KindMalformedSpecifier:
		return "malformed specifier"
	}
	return "other"
}

// Kind returns the class of err, for callers that prefer a switch to
// errors.Is chains.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrToolUnavailable):
		return KindToolUnavailable
	case errors.Is(err, ErrPackageNotFound):
		return KindPackageNotFound
	case errors.Is(err, version.ErrMalformedVersion):
		return KindMalformedVersion
	case errors.Is(err, version.ErrMalformedSpecifier):
		return KindMalformedSpecifier
	}
	return KindOther
}
