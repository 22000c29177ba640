package domain

import "strings"

// Position is the 1-based line and column of a reference inside its file.
type Position struct {
	Line   int
	Column int
}

// Entity is one usage site of a versioned resource.
type Entity struct {
	// Line is the reference exactly as written, e.g. "actions/checkout@v3".
	Line     string
	Pos      Position
	Resource Resource
	Version  Version
	// Latest and UpdatedLine are set once a newer version is known.
	Latest      Version
	UpdatedLine string
}

// NewEntity parses text into an Entity located at pos.
func NewEntity(text string, pos Position) (Entity, error) {
	resource, version, err := ParseReference(text)
	if err != nil {
		return Entity{}, err
	}
	return Entity{
		Line:     text,
		Pos:      pos,
		Resource: resource,
		Version:  version,
	}, nil
}

// WithLatest returns a copy of e pointing at latest, with the rewritten reference.
func (e Entity) WithLatest(latest Version) Entity {
	e.Latest = latest
	e.UpdatedLine = strings.TrimSuffix(e.Line, e.Version.String()) + latest.String()
	return e
}

// Outdated reports whether a latest version ordering differently from the
// pinned one is known. Equivalent tags such as v4 and v4.0.0 are not outdated.
func (e Entity) Outdated() bool {
	return !e.Latest.IsZero() && e.Latest.Compare(e.Version) != 0
}

// Outcome is the result of resolving one resource at a pinned version.
type Outcome struct {
	Resource Resource
	Current  Version
	// Latest is zero when no version could be determined.
	Latest Version
	// Err is set when the upstream lookup failed.
	Err error
}

// Outdated reports whether the resolved latest orders differently from the current version.
func (o Outcome) Outdated() bool {
	return !o.Latest.IsZero() && o.Latest.Compare(o.Current) != 0
}

// Workflow is a parsed workflow file.
type Workflow struct {
	Path     string
	Contents []byte
	// Checksum is the xxhash of Contents as read from disk.
	Checksum uint64
	Entities []Entity
}
