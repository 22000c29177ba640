package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a tag parsed leniently as semver.
// The original string is kept for display and rewriting.
type Version struct {
	raw    string
	parsed *semver.Version
}

// ParseVersion parses a tag. Tags that are not semver are still valid versions;
// they sort below every semver tag.
func ParseVersion(raw string) (Version, error) {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return Version{}, &VersionParsingError{Raw: raw}
	}

	v := Version{raw: raw}
	if parsed, err := semver.NewVersion(raw); err == nil {
		v.parsed = parsed
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the original tag.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.raw == ""
}

// IsSemver reports whether the tag parsed as semver.
func (v Version) IsSemver() bool {
	return v.parsed != nil
}

// Equal reports whether both versions carry the same tag.
func (v Version) Equal(o Version) bool {
	return v.raw == o.raw
}

// IsCommitSHA reports whether the tag is a full 40 character commit hash.
func (v Version) IsCommitSHA() bool {
	if len(v.raw) != 40 {
		return false
	}
	for _, c := range v.raw {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or +1. Semver tags compare by precedence, semver beats
// non-semver, and two non-semver tags compare by their text.
func (v Version) Compare(o Version) int {
	switch {
	case v.parsed != nil && o.parsed != nil:
		return v.parsed.Compare(o.parsed)
	case v.parsed != nil:
		return 1
	case o.parsed != nil:
		return -1
	default:
		return strings.Compare(v.raw, o.raw)
	}
}

// Latest returns the maximum of versions. On ties the first one wins.
// It returns false for an empty list.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.Compare(latest) > 0 {
			latest = v
		}
	}
	return latest, true
}

// ContainsVersion reports whether versions has a tag equal to v.
func ContainsVersion(versions []Version, v Version) bool {
	for _, candidate := range versions {
		if candidate.Equal(v) {
			return true
		}
	}
	return false
}
