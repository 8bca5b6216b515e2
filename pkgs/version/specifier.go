package version

import (
	"fmt"
	"regexp"
	"strings"
)

// Op is the comparison operator of a Specifier.
type Op string

const (
	OpNone Op = ""
	OpEq   Op = "="
	OpEqEq Op = "=="
	OpGt   Op = ">"
	OpGe   Op = ">="
	OpLt   Op = "<"
	OpLe   Op = "<="
)

// Specifier is an operator paired with a target version, e.g. ">= 1.2".
type Specifier struct {
	Op Op
	// Version is the dotted number, e.g. "1.1.0" for ">= 1.1.0j".
	Version string
	// Suffix holds whatever is glued to Version, e.g. "j" for ">= 1.1.0j".
	// Only the Lenient policy looks at it.
	Suffix string
}

func (s Specifier) String() string {
	return string(s.Op) + s.Version + s.Suffix
}

var specRE = regexp.MustCompile(`^([<>=]?=?)?\s*((\d*\.)*\d*)([0-9A-Za-z.~+-]*)`)

// ParseSpecifier splits a specifier such as ">= 0.1.2" into its operator and
// version. A missing operator means equality.
func ParseSpecifier(spec string) (Specifier, error) {
	m := specRE.FindStringSubmatch(strings.TrimSpace(spec))
	if m == nil || !strings.ContainsAny(m[2], "0123456789") {
		return Specifier{}, &MalformedSpecifierError{Spec: spec}
	}
	return Specifier{Op: Op(m[1]), Version: m[2], Suffix: m[4]}, nil
}

// Satisfies reports whether installed matches s under the Numeric policy.
func (s Specifier) Satisfies(installed string) (bool, error) {
	return s.Match(Numeric, installed)
}

// Match reports whether installed matches s, ordering versions with p.
func (s Specifier) Match(p Policy, installed string) (bool, error) {
	target := s.Version
	if p == Lenient {
		target += s.Suffix
	}
	r, err := p.Compare(installed, target)
	if err != nil {
		return false, err
	}
	switch s.Op {
	case OpNone, OpEq, OpEqEq:
		return r == 0, nil
	case OpGt:
		return r > 0, nil
	case OpGe:
		return r >= 0, nil
	case OpLt:
		return r < 0, nil
	case OpLe:
		return r <= 0, nil
	}
	return false, fmt.Errorf("unknown operator %q: %w", s.Op, ErrMalformedSpecifier)
}
