package domain

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Level is the version component a bump targets. LevelNone is valid only
// together with a prerelease intent.
type Level int

const (
	LevelNone Level = iota
	LevelMajor
	LevelMinor
	LevelPatch
)

func (l Level) String() string {
	switch l {
	case LevelMajor:
		return "major"
	case LevelMinor:
		return "minor"
	case LevelPatch:
		return "patch"
	default:
		return "none"
	}
}

// Intent is the caller's declared bump. Holding a single Level makes
// conflicting major/minor/patch combinations unrepresentable.
type Intent struct {
	Level      Level
	Prerelease bool
}

// NewIntent validates the raw flag combination at the CLI boundary. At most
// one of major/minor/patch may be set, and at least one of the four flags
// must be set; NextTag itself never defaults.
func NewIntent(major, minor, patch, pre bool) (Intent, error) {
	var level Level
	set := 0
	if major {
		level = LevelMajor
		set++
	}
	if minor {
		level = LevelMinor
		set++
	}
	if patch {
		level = LevelPatch
		set++
	}
	if set > 1 {
		return Intent{}, fmt.Errorf("conflicting bump flags: only one of --major, --minor, --patch may be set")
	}
	if set == 0 && !pre {
		return Intent{}, fmt.Errorf("no bump requested: set one of --major, --minor, --patch, --pre")
	}
	return Intent{Level: level, Prerelease: pre}, nil
}

// NextTag computes the tag following prev under the given intent. It is a
// pure, total function over intents produced by NewIntent; the result keeps
// prev's prefix and never carries build metadata.
//
// A patch bump on a prerelease finalizes the series without consuming an
// extra patch increment, while a pre-only bump on a release claims the next
// patch. The asymmetry is intentional: a prerelease already names the patch
// it precedes.
func NextTag(prev Tag, intent Intent) Tag {
	major := prev.Version.Major()
	minor := prev.Version.Minor()
	patch := prev.Version.Patch()
	pre := ""
	switch intent.Level {
	case LevelMajor:
		major, minor, patch = major+1, 0, 0
		if intent.Prerelease {
			pre = successor(prev.Version.Prerelease())
		}
	case LevelMinor:
		minor, patch = minor+1, 0
		if intent.Prerelease {
			pre = successor(prev.Version.Prerelease())
		}
	case LevelPatch:
		if !prev.IsPrerelease() {
			patch++
		}
	case LevelNone:
		if prev.IsPrerelease() {
			pre = successor(prev.Version.Prerelease())
		} else {
			patch++
			pre = successor("")
		}
	}
	return Tag{Prefix: prev.Prefix, Version: semver.New(major, minor, patch, pre, "")}
}

// successor advances a prerelease label: "preN" becomes "preN+1", anything
// else (including absent) starts the series at "pre0".
func successor(label string) string {
	if n, ok := prereleaseCounter(label); ok {
		return fmt.Sprintf("pre%d", n+1)
	}
	return "pre0"
}
