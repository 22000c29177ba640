package workflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkflowStore = (*Store)(nil)

// Store implements ports.WorkflowStore on the local filesystem.
type Store struct {
	parser *Parser
}

// NewStore creates a Store parsing files with parser.
func NewStore(parser *Parser) *Store {
	return &Store{parser: parser}
}

// List returns the .yml and .yaml files directly inside dir, sorted.
func (s *Store) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkflowDirReadFailed.Error()), "dir", dir)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yml", ".yaml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// Load reads and parses the workflow at path.
func (s *Store) Load(path string) (*domain.Workflow, error) {
	contents, err := os.ReadFile(path) //nolint:gosec // path comes from List or the command line
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkflowReadFailed.Error()), "path", path)
	}
	return s.parser.Parse(path, contents)
}

// Save writes the rewritten contents of wf. Nothing is written when no entity
// changed. The file is left alone if it changed on disk since it was loaded.
func (s *Store) Save(wf *domain.Workflow) (bool, error) {
	contents, changed, unplaced := Rewrite(wf)
	for _, e := range unplaced {
		s.parser.logger.Warn(fmt.Sprintf("%s:%d: could not rewrite %q to %q, update it by hand",
			wf.Path, e.Pos.Line, e.Line, e.UpdatedLine))
	}
	if !changed {
		return false, nil
	}

	current, err := os.ReadFile(wf.Path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrWorkflowReadFailed.Error()), "path", wf.Path)
	}
	if xxhash.Sum64(current) != wf.Checksum {
		return false, zerr.With(zerr.Wrap(domain.ErrWorkflowChanged, "refusing to overwrite"), "path", wf.Path)
	}

	if err := writeAtomic(wf.Path, contents); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrWorkflowWriteFailed.Error()), "path", wf.Path)
	}

	wf.Contents = contents
	wf.Checksum = xxhash.Sum64(contents)
	return true, nil
}

// writeAtomic replaces path through a temporary file in the same directory,
// keeping the mode of the existing file.
func writeAtomic(path string, data []byte) (err error) {
	mode := fs.FileMode(domain.FilePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
