package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tag is a release tag: an optional namespace prefix plus a semantic
// version. The canonical text form is "[prefix@]vMAJOR.MINOR.PATCH[-pre]".
// Tags are immutable; derive new ones through NextTag.
type Tag struct {
	Prefix  string
	Version *semver.Version
}

// ParseError reports a raw string that is not a well-formed tag.
type ParseError struct {
	Raw    string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid tag %q: %v", e.Raw, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// ParseTag parses a raw tag string. The version body may carry a leading
// "v" marker; everything before the first "@" is the prefix.
func ParseTag(raw string) (Tag, error) {
	prefix, body, found := strings.Cut(raw, "@")
	if !found {
		prefix, body = "", raw
	}
	ver, err := semver.StrictNewVersion(strings.TrimPrefix(body, "v"))
	if err != nil {
		return Tag{}, &ParseError{Raw: raw, Reason: err}
	}
	return Tag{Prefix: prefix, Version: ver}, nil
}

// String renders the canonical form. Build metadata is never emitted.
func (t Tag) String() string {
	var b strings.Builder
	if t.Prefix != "" {
		b.WriteString(t.Prefix)
		b.WriteByte('@')
	}
	b.WriteByte('v')
	fmt.Fprintf(&b, "%d.%d.%d", t.Version.Major(), t.Version.Minor(), t.Version.Patch())
	if pre := t.Version.Prerelease(); pre != "" {
		b.WriteByte('-')
		b.WriteString(pre)
	}
	return b.String()
}

// IsPrerelease reports whether the tag carries a prerelease label.
func (t Tag) IsPrerelease() bool {
	return t.Version.Prerelease() != ""
}

// Compare implements a total order: numeric on (major, minor, patch), then
// prerelease precedence (a prerelease sorts before its release; "preN"
// labels compare numerically by N, anything else lexicographically), then
// prefix as a lexicographic tie-break. Build metadata is ignored.
func (t Tag) Compare(other Tag) int {
	if c := compareCore(t.Version, other.Version); c != 0 {
		return c
	}
	if c := comparePrerelease(t.Version.Prerelease(), other.Version.Prerelease()); c != 0 {
		return c
	}
	return strings.Compare(t.Prefix, other.Prefix)
}

// Equal reports whether both tags name the same release (build metadata
// ignored).
func (t Tag) Equal(other Tag) bool {
	return t.Prefix == other.Prefix &&
		compareCore(t.Version, other.Version) == 0 &&
		t.Version.Prerelease() == other.Version.Prerelease()
}

func compareCore(a, b *semver.Version) int {
	if c := compareUint(a.Major(), b.Major()); c != 0 {
		return c
	}
	if c := compareUint(a.Minor(), b.Minor()); c != 0 {
		return c
	}
	return compareUint(a.Patch(), b.Patch())
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePrerelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1 // release sorts after its prereleases
	case b == "":
		return -1
	}
	an, aok := prereleaseCounter(a)
	bn, bok := prereleaseCounter(b)
	if aok && bok {
		return compareUint(an, bn)
	}
	return strings.Compare(a, b)
}

// prereleaseCounter extracts N from a "preN" label.
func prereleaseCounter(label string) (uint64, bool) {
	rest, ok := strings.CutPrefix(label, "pre")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
