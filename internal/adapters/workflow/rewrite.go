package workflow

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/ghwu/internal/core/domain"
)

// Rewrite returns the contents of wf with every outdated entity replaced by
// its updated reference. Replacements happen at the entity's position only,
// so other occurrences of the same text are left alone. Entities whose text is
// not found at their position, such as block scalars, are returned as unplaced.
func Rewrite(wf *domain.Workflow) (contents []byte, changed bool, unplaced []domain.Entity) {
	byLine := make(map[int][]domain.Entity)
	for _, e := range wf.Entities {
		if e.UpdatedLine == "" || e.UpdatedLine == e.Line {
			continue
		}
		byLine[e.Pos.Line] = append(byLine[e.Pos.Line], e)
	}
	if len(byLine) == 0 {
		return wf.Contents, false, nil
	}

	lines := bytes.SplitAfter(wf.Contents, []byte("\n"))
	for lineNo, entities := range byLine {
		if lineNo < 1 || lineNo > len(lines) {
			unplaced = append(unplaced, entities...)
			continue
		}
		// Right to left keeps the columns of the remaining entities valid.
		slices.SortFunc(entities, func(a, b domain.Entity) int {
			return cmp.Compare(b.Pos.Column, a.Pos.Column)
		})

		line := string(lines[lineNo-1])
		for _, e := range entities {
			start := min(max(e.Pos.Column-1, 0), len(line))
			idx := strings.Index(line[start:], e.Line)
			if idx < 0 {
				unplaced = append(unplaced, e)
				continue
			}
			at := start + idx
			line = line[:at] + e.UpdatedLine + line[at+len(e.Line):]
			changed = true
		}
		lines[lineNo-1] = []byte(line)
	}

	slices.SortFunc(unplaced, func(a, b domain.Entity) int {
		return cmp.Or(cmp.Compare(a.Pos.Line, b.Pos.Line), cmp.Compare(a.Pos.Column, b.Pos.Column))
	})
	if !changed {
		return wf.Contents, false, unplaced
	}
	return bytes.Join(lines, nil), true, unplaced
}
