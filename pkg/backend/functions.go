package backend

import (
	"context"
	"io/fs"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/fspath"
)

func ReadTextContent(ctx context.Context, b Backend, path fspath.Path) (string, error) {
	if _b, ok := b.(ReadBackend); ok {
		return _b.ReadTextContent(ctx, path)
	}
	return "", errors.Wrapf(fs.ErrInvalid, "backend does not support ReadTextContent")
}

func ReadDir(ctx context.Context, b Backend, path fspath.Path) ([]string, error) {
	if _b, ok := b.(ListBackend); ok {
		return _b.ReadDir(ctx, path)
	}
	return nil, errors.Wrapf(fs.ErrInvalid, "backend does not support ReadDir")
}
