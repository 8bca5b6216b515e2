// Package version compares the dotted version strings reported by
// pkg-config and evaluates specifiers such as ">= 1.2".
//
// Versions are compared numerically after trailing ".0" groups are removed,
// so "1.2.0" equals "1.2" and "1.2" sorts before "1.2.3". A segment that is
// not a non-negative integer ("1.2.3b4") fails with *MalformedVersionError
// under the default Numeric policy; the Lenient policy orders such versions
// instead.
package version
