package statcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/bluele/gcache"
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
	"github.com/je4/utils/v2/pkg/zLogger"
	"github.com/pkg/errors"
)

// NewBackend wraps base with an LRU cache of Stat results keyed by
// absolute path. Mutations through the wrapper keep the cache
// consistent; documents that re-probe the same targets (placid
// re-renders) hit the cache instead of the base backend.
func NewBackend(base backend.Backend, cacheSize int, logger zLogger.ZLogger) (*cacheBackend, error) {
	_logger := logger.With().Str("class", "cacheBackend").Logger()
	logger = &_logger
	c := &cacheBackend{
		base:   base,
		cache:  gcache.New(cacheSize).LRU().Build(),
		logger: logger,
	}
	return c, nil
}

type cacheBackend struct {
	base   backend.Backend
	cache  gcache.Cache
	lock   sync.RWMutex
	logger zLogger.ZLogger
}

func (c *cacheBackend) String() string {
	return fmt.Sprintf("cacheBackend:%v", c.base)
}

func (c *cacheBackend) absolute(ctx context.Context, path fspath.Path) (fspath.Path, error) {
	if path.IsAbs() {
		return path, nil
	}
	cwd, err := c.base.CurrentDirectory(ctx)
	if err != nil {
		return fspath.Path{}, errors.Wrap(err, "cannot get current directory")
	}
	for _, comp := range path.Components() {
		cwd = cwd.Append(comp)
	}
	return cwd, nil
}

func (c *cacheBackend) CurrentDirectory(ctx context.Context) (fspath.Path, error) {
	return c.base.CurrentDirectory(ctx)
}

func (c *cacheBackend) ChangeDirectory(ctx context.Context, rel fspath.Path) error {
	return c.base.ChangeDirectory(ctx, rel)
}

func (c *cacheBackend) Stat(ctx context.Context, path fspath.Path) (backend.Kind, error) {
	full, err := c.absolute(ctx, path)
	if err != nil {
		return backend.KindAbsent, err
	}
	key := full.String()
	c.lock.RLock()
	if cached, err := c.cache.Get(key); err == nil {
		c.lock.RUnlock()
		kind, ok := cached.(backend.Kind)
		if !ok {
			return backend.KindAbsent, errors.Errorf("cannot cast cache entry %v for '%s'", cached, key)
		}
		return kind, nil
	}
	c.lock.RUnlock()
	kind, err := c.base.Stat(ctx, full)
	if err != nil {
		return backend.KindAbsent, errors.Wrapf(err, "cannot stat '%s'", key)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.logger.Debug().Msgf("cache stat '%s' = %s", key, kind)
	c.cache.Set(key, kind)
	return kind, nil
}

func (c *cacheBackend) CreateDirectory(ctx context.Context, path fspath.Path) error {
	full, err := c.absolute(ctx, path)
	if err != nil {
		return err
	}
	if err := c.base.CreateDirectory(ctx, full); err != nil {
		return errors.Wrapf(err, "cannot create directory '%s'", full)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache.Set(full.String(), backend.KindDirectory)
	return nil
}

func (c *cacheBackend) WriteTextContent(ctx context.Context, path fspath.Path, content string) error {
	full, err := c.absolute(ctx, path)
	if err != nil {
		return err
	}
	if err := c.base.WriteTextContent(ctx, full, content); err != nil {
		return errors.Wrapf(err, "cannot write '%s'", full)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.cache.Set(full.String(), backend.KindData)
	return nil
}

// Remove purges the whole cache: entries below a removed directory
// cannot be identified by key prefix alone.
func (c *cacheBackend) Remove(ctx context.Context, path fspath.Path) error {
	full, err := c.absolute(ctx, path)
	if err != nil {
		return err
	}
	if err := c.base.Remove(ctx, full); err != nil {
		return errors.Wrapf(err, "cannot remove '%s'", full)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.logger.Debug().Msgf("purge stat cache after remove of '%s'", full)
	c.cache.Purge()
	return nil
}

func (c *cacheBackend) ReadTextContent(ctx context.Context, path fspath.Path) (string, error) {
	return backend.ReadTextContent(ctx, c.base, path)
}

func (c *cacheBackend) ReadDir(ctx context.Context, path fspath.Path) ([]string, error) {
	return backend.ReadDir(ctx, c.base, path)
}

var (
	_ backend.Backend     = &cacheBackend{}
	_ backend.ReadBackend = &cacheBackend{}
	_ backend.ListBackend = &cacheBackend{}
)
