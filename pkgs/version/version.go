package version

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedVersion is matched by every *MalformedVersionError.
	ErrMalformedVersion = errors.New("malformed version")
	// ErrMalformedSpecifier is matched by every *MalformedSpecifierError.
	ErrMalformedSpecifier = errors.New("malformed version specifier")
)

// MalformedVersionError reports a version string with a segment that is not
// a non-negative integer.
type MalformedVersionError struct {
	Version string
	Segment string
	Err     error
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("version %q: segment %q is not a non-negative integer", e.Version, e.Segment)
}

func (e *MalformedVersionError) Unwrap() error { return e.Err }

func (e *MalformedVersionError) Is(target error) bool { return target == ErrMalformedVersion }

// MalformedSpecifierError reports a specifier without a version number.
type MalformedSpecifierError struct {
	Spec string
}

func (e *MalformedSpecifierError) Error() string {
	return fmt.Sprintf("%q is not a correct version specifier", e.Spec)
}

func (e *MalformedSpecifierError) Is(target error) bool { return target == ErrMalformedSpecifier }

// Version is a dotted version with its trailing zero groups removed.
type Version []int

func (v Version) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

var trailingZeros = regexp.MustCompile(`(\.0+)*$`)

// Normalize converts s into a Version. "1.2.0.0" becomes [1 2].
func Normalize(s string) (Version, error) {
	trimmed := trailingZeros.ReplaceAllString(s, "")
	segs := strings.Split(trimmed, ".")
	v := make(Version, 0, len(segs))
	for _, seg := range segs {
		n, err := strconv.ParseUint(seg, 10, strconv.IntSize-1)
		if err != nil {
			return nil, &MalformedVersionError{Version: s, Segment: seg, Err: err}
		}
		v = append(v, int(n))
	}
	return v, nil
}

// Cmp compares two normalized versions lexicographically and returns
// -1, 0 or 1. A strict prefix sorts first.
func (v Version) Cmp(other Version) int {
	for i := 0; i < len(v) && i < len(other); i++ {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(v) < len(other):
		return -1
	case len(v) > len(other):
		return 1
	}
	return 0
}

// Compare normalizes v1 and v2 and returns:
//
//	-1 if v1 < v2
//	 0 if v1 == v2
//	 1 if v1 > v2
func Compare(v1, v2 string) (int, error) {
	n1, err := Normalize(v1)
	if err != nil {
		return 0, err
	}
	n2, err := Normalize(v2)
	if err != nil {
		return 0, err
	}
	return n1.Cmp(n2), nil
}
