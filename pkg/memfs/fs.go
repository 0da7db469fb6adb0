package memfs

import (
	"context"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
	"github.com/je4/utils/v2/pkg/zLogger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type node struct {
	content  string
	children map[string]*node
}

func (n *node) isDir() bool {
	return n.children != nil
}

// NewBackend creates an empty in-memory backend with the cursor at the
// root.
func NewBackend(logger zLogger.ZLogger) *memBackend {
	_logger := logger.With().Str("class", "memBackend").Logger()
	logger = &_logger
	return &memBackend{
		root:   &node{children: map[string]*node{}},
		cwd:    fspath.Root(),
		logger: logger,
	}
}

type memBackend struct {
	root   *node
	cwd    fspath.Path
	logger zLogger.ZLogger
}

func (m *memBackend) String() string {
	return "memBackend(" + m.cwd.String() + ")"
}

func (m *memBackend) resolve(path fspath.Path) fspath.Path {
	if path.IsAbs() {
		return path
	}
	full := m.cwd
	for _, comp := range path.Components() {
		full = full.Append(comp)
	}
	return full
}

func (m *memBackend) lookup(path fspath.Path) (*node, bool) {
	cur := m.root
	for _, comp := range path.Components() {
		if !cur.isDir() {
			return nil, false
		}
		child, ok := cur.children[comp]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

func (m *memBackend) CurrentDirectory(ctx context.Context) (fspath.Path, error) {
	if err := ctx.Err(); err != nil {
		return fspath.Path{}, errors.WithStack(err)
	}
	return m.cwd, nil
}

func (m *memBackend) ChangeDirectory(ctx context.Context, rel fspath.Path) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	cwd := m.cwd
	for _, comp := range rel.Components() {
		if comp == ".." {
			if cwd.Len() == 0 {
				return errors.Errorf("cannot ascend above root")
			}
			cwd = cwd.Parent()
			continue
		}
		next := cwd.Append(comp)
		n, ok := m.lookup(next)
		if !ok {
			return errors.Errorf("directory '%s' does not exist", next)
		}
		if !n.isDir() {
			return errors.Errorf("'%s' is not a directory", next)
		}
		cwd = next
	}
	m.logger.Debug().Msgf("change directory '%s' -> '%s'", m.cwd, cwd)
	m.cwd = cwd
	return nil
}

func (m *memBackend) Stat(ctx context.Context, path fspath.Path) (backend.Kind, error) {
	if err := ctx.Err(); err != nil {
		return backend.KindAbsent, errors.WithStack(err)
	}
	n, ok := m.lookup(m.resolve(path))
	if !ok {
		return backend.KindAbsent, nil
	}
	if n.isDir() {
		return backend.KindDirectory, nil
	}
	return backend.KindData, nil
}

func (m *memBackend) CreateDirectory(ctx context.Context, path fspath.Path) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	full := m.resolve(path)
	if full.Len() == 0 {
		return errors.Errorf("cannot create root directory")
	}
	parent, ok := m.lookup(full.Parent())
	if !ok || !parent.isDir() {
		return errors.Errorf("parent of '%s' does not exist", full)
	}
	name := full.Base()
	if _, occupied := parent.children[name]; occupied {
		return errors.Errorf("'%s' already exists", full)
	}
	m.logger.Debug().Msgf("create directory '%s'", full)
	parent.children[name] = &node{children: map[string]*node{}}
	return nil
}

func (m *memBackend) WriteTextContent(ctx context.Context, path fspath.Path, content string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	full := m.resolve(path)
	if full.Len() == 0 {
		return errors.Errorf("cannot write to root directory")
	}
	parent, ok := m.lookup(full.Parent())
	if !ok || !parent.isDir() {
		return errors.Errorf("parent of '%s' does not exist", full)
	}
	name := full.Base()
	if existing, occupied := parent.children[name]; occupied && existing.isDir() {
		return errors.Errorf("'%s' is a directory", full)
	}
	m.logger.Debug().Msgf("write %d bytes to '%s'", len(content), full)
	parent.children[name] = &node{content: content}
	return nil
}

func (m *memBackend) Remove(ctx context.Context, path fspath.Path) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	full := m.resolve(path)
	if full.Len() == 0 {
		return errors.Errorf("cannot remove root directory")
	}
	parent, ok := m.lookup(full.Parent())
	if !ok || !parent.isDir() {
		return errors.Errorf("parent of '%s' does not exist", full)
	}
	name := full.Base()
	if _, occupied := parent.children[name]; !occupied {
		return errors.Errorf("'%s' does not exist", full)
	}
	m.logger.Debug().Msgf("remove '%s'", full)
	delete(parent.children, name)
	return nil
}

func (m *memBackend) ReadTextContent(ctx context.Context, path fspath.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	full := m.resolve(path)
	n, ok := m.lookup(full)
	if !ok {
		return "", errors.Errorf("'%s' does not exist", full)
	}
	if n.isDir() {
		return "", errors.Errorf("'%s' is a directory", full)
	}
	return n.content, nil
}

func (m *memBackend) ReadDir(ctx context.Context, path fspath.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	full := m.resolve(path)
	n, ok := m.lookup(full)
	if !ok {
		return nil, errors.Errorf("'%s' does not exist", full)
	}
	if !n.isDir() {
		return nil, errors.Errorf("'%s' is not a directory", full)
	}
	names := maps.Keys(n.children)
	slices.Sort(names)
	return names, nil
}

// Snapshot returns the whole tree as nested maps with string leaves.
func (m *memBackend) Snapshot() map[string]any {
	return snapshot(m.root)
}

func snapshot(n *node) map[string]any {
	result := map[string]any{}
	for name, child := range n.children {
		if child.isDir() {
			result[name] = snapshot(child)
		} else {
			result[name] = child.content
		}
	}
	return result
}

var (
	_ backend.Backend     = &memBackend{}
	_ backend.ReadBackend = &memBackend{}
	_ backend.ListBackend = &memBackend{}
)
