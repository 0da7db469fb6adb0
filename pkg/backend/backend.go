package backend

import (
	"context"

	"github.com/je4/declfs/pkg/fspath"
)

// Kind is the three-way existence state of a path.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindDirectory
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindDirectory:
		return "directory"
	case KindData:
		return "data"
	}
	return "unknown"
}

// Backend is the capability set the declaration layer needs from a
// storage implementation. All operations take a context; backends with
// remote storage suspend on it, in-memory backends only check
// cancellation.
type Backend interface {
	CurrentDirectory(ctx context.Context) (fspath.Path, error)
	// ChangeDirectory moves the cursor by the given relative path. A
	// '..' component ascends one level, any other component descends
	// into an existing directory.
	ChangeDirectory(ctx context.Context, rel fspath.Path) error
	Stat(ctx context.Context, path fspath.Path) (Kind, error)
	// CreateDirectory fails if the parent is missing or the path is
	// already occupied.
	CreateDirectory(ctx context.Context, path fspath.Path) error
	// WriteTextContent fails if the parent is missing or the path is
	// occupied by a directory. Existing data is replaced.
	WriteTextContent(ctx context.Context, path fspath.Path, content string) error
	// Remove deletes the object at path, directories including their
	// subtree.
	Remove(ctx context.Context, path fspath.Path) error
}

// ReadBackend is implemented by backends that can read data back.
type ReadBackend interface {
	Backend
	ReadTextContent(ctx context.Context, path fspath.Path) (string, error)
}

// ListBackend is implemented by backends that can list directories.
type ListBackend interface {
	Backend
	ReadDir(ctx context.Context, path fspath.Path) ([]string, error)
}
