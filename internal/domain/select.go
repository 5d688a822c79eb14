package domain

import "github.com/Masterminds/semver/v3"

// InitialTag returns the baseline tag proposed when a prefix has no
// releases yet.
func InitialTag(prefix string) Tag {
	return Tag{Prefix: prefix, Version: semver.New(0, 1, 0, "", "")}
}

// SelectLatest picks the maximum tag among the raw candidates that parse
// and carry exactly the requested prefix. Unparsable candidates are not
// ours and are discarded silently. The second result is false when no
// candidate matched; callers then fall back to InitialTag.
func SelectLatest(raw []string, prefix string) (Tag, bool) {
	var latest Tag
	found := false
	for _, s := range raw {
		tag, err := ParseTag(s)
		if err != nil {
			continue
		}
		if tag.Prefix != prefix {
			continue
		}
		if !found || tag.Compare(latest) > 0 {
			latest = tag
			found = true
		}
	}
	return latest, found
}
