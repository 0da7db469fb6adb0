package memfs

import (
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/utils/v2/pkg/zLogger"
)

func NewCreateBackendFunc(logger zLogger.ZLogger) backend.CreateBackendFunc {
	return func(f *backend.Factory, uri string) (backend.Backend, error) {
		return NewBackend(logger), nil
	}
}
