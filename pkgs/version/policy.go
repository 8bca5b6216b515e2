package version

import (
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// Policy selects how two version strings are ordered.
type Policy int

const (
	// Numeric accepts dotted non-negative integers only; anything else fails
	// with a *MalformedVersionError.
	Numeric Policy = iota
	// Lenient compares numerically when both versions allow it, falls back to
	// semver precedence for prerelease versions ("1.2.3-rc.1") and to GNU
	// strverscmp ordering for everything else ("1.1.0j" < "1.1.0k").
	// Letters carry no release semantics: "1.2.3" sorts before "1.2.3b1".
	// Trailing zero groups are dropped before the strverscmp fallback, so
	// "1.2" == "1.2.0" < "1.2a" < "1.2.1". Mixing semver prereleases with
	// letter suffixes ("1.2.3-rc.1" against "1.2.3a") has no total order.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Numeric:
		return "numeric"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "numeric" or "lenient" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "numeric", "strict":
		return Numeric, nil
	case "lenient":
		return Lenient, nil
	}
	return Numeric, fmt.Errorf("unknown version policy %q", s)
}

// Compare orders v1 and v2 under p and returns -1, 0 or 1.
func (p Policy) Compare(v1, v2 string) (int, error) {
	r, err := Compare(v1, v2)
	if p != Lenient || err == nil {
		return r, err
	}
	if !errors.Is(err, ErrMalformedVersion) {
		return 0, err
	}
	s1, s2 := "v"+v1, "v"+v2
	if semver.IsValid(s1) && semver.IsValid(s2) &&
		(semver.Prerelease(s1) != "" || semver.Prerelease(s2) != "") {
		return semver.Compare(s1, s2), nil
	}
	return sign(strverscmp(trimZeros(v1), trimZeros(v2))), nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func trimZeros(s string) string {
	return trailingZeros.ReplaceAllString(s, "")
}
