package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"
)

var (
	//go:embed models
	modelFS embed.FS
)

// ModelLoader loads and caches models from an fs.FS. Models are immutable once loaded
// and are shared by every entity spawned from them.
type ModelLoader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*Model
}

// NewModelLoader creates a loader reading from fsys. A nil fsys uses the embedded models.
func NewModelLoader(fsys fs.FS) *ModelLoader {
	if fsys == nil {
		fsys = modelFS
	}
	return &ModelLoader{
		fsys:  fsys,
		cache: make(map[string]*Model),
	}
}

// Load parses the OBJ file at p, resolving its mtllib relative to the same directory.
func (l *ModelLoader) Load(p string) (*Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.cache[p]; ok {
		return m, nil
	}

	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open model %s: %w", p, err)
	}
	defer f.Close()

	dir := path.Dir(p)
	m, err := ParseOBJ(f, func(lib string) (map[string]Material, error) {
		mf, err := l.fsys.Open(path.Join(dir, lib))
		if err != nil {
			return nil, err
		}
		defer mf.Close()
		return ParseMTL(mf)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %s: %w", p, err)
	}
	m.Path = p

	l.cache[p] = m
	return m, nil
}

var (
	defaultLoader     *ModelLoader
	defaultLoaderOnce sync.Once
)

// LoadModel loads a model from the embedded asset set.
func LoadModel(p string) (*Model, error) {
	defaultLoaderOnce.Do(func() {
		defaultLoader = NewModelLoader(nil)
	})
	return defaultLoader.Load(p)
}
