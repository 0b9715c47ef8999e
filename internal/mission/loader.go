package mission

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinMissions embed.FS

// ErrMissionNotFound is returned when no mission file matches an ID.
var ErrMissionNotFound = errors.New("mission not found")

// Loader handles loading missions from a filesystem.
type Loader struct {
	FS billy.Filesystem
}

func NewLoader(fsys billy.Filesystem) *Loader {
	return &Loader{FS: fsys}
}

// NewDirLoader loads missions from a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(osfs.New(dir))
}

// NewBuiltinLoader loads the missions shipped with the binary.
func NewBuiltinLoader() (*Loader, error) {
	mfs := memfs.New()
	entries, err := builtinMissions.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin missions: %w", err)
	}
	for _, e := range entries {
		data, err := builtinMissions.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read builtin mission %s: %w", e.Name(), err)
		}
		if err := util.WriteFile(mfs, e.Name(), data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to stage builtin mission %s: %w", e.Name(), err)
		}
	}
	return NewLoader(mfs), nil
}

// LoadMission loads a single mission by ID (filename without extension).
func (l *Loader) LoadMission(id string) (*Mission, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrMissionNotFound, id)
	}

	data, err := util.ReadFile(l.FS, id+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissionNotFound, id)
		}
		return nil, fmt.Errorf("failed to read mission file: %w", err)
	}

	var m Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mission yaml: %w", err)
	}

	// Ensure ID matches filename if not set
	if m.ID == "" {
		m.ID = id
	}

	return &m, nil
}

// ListMissions returns all available missions sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) ListMissions() ([]*Mission, error) {
	files, err := l.FS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var missions []*Mission
	for _, f := range files {
		if f.IsDir() || path.Ext(f.Name()) != ".yaml" {
			continue
		}
		m, err := l.LoadMission(strings.TrimSuffix(f.Name(), ".yaml"))
		if err != nil {
			continue
		}
		missions = append(missions, m)
	}
	sort.Slice(missions, func(i, j int) bool { return missions[i].ID < missions[j].ID })
	return missions, nil
}
