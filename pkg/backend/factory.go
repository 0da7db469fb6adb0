package backend

import (
	"regexp"

	"emperror.dev/errors"
	"golang.org/x/exp/slices"
)

type levelBackend uint8

const (
	LowBackend levelBackend = iota
	MediumBackend
	HighBackend
)

type CreateBackendFunc func(f *Factory, uri string) (Backend, error)

type createBackend struct {
	level  levelBackend
	re     *regexp.Regexp
	create CreateBackendFunc
}

// Factory creates backends for uri-addressed storage locations. Matching
// is tried in order of descending level, first match wins.
type Factory struct {
	backends []*createBackend
}

func NewFactory() (*Factory, error) {
	f := &Factory{backends: []*createBackend{}}
	return f, nil
}

func (f *Factory) Register(create CreateBackendFunc, prefixRegexp string, level levelBackend) error {
	re, err := regexp.Compile(prefixRegexp)
	if err != nil {
		return errors.Wrapf(err, "cannot compile regexp '%s'", prefixRegexp)
	}
	// insert new createBackend in order of level
	cb := &createBackend{
		level:  level,
		re:     re,
		create: create,
	}
	pos, _ := slices.BinarySearchFunc(f.backends, cb, func(a, b *createBackend) int {
		if a.level > b.level {
			return -1
		}
		if a.level < b.level {
			return 1
		}
		return 0
	})
	f.backends = append(f.backends, nil)
	copy(f.backends[pos+1:], f.backends[pos:])
	f.backends[pos] = cb
	return nil
}

func (f *Factory) Get(uri string) (Backend, error) {
	for _, cb := range f.backends {
		if cb.re.MatchString(uri) {
			b, err := cb.create(f, uri)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot create backend for '%s'", uri)
			}
			return b, nil
		}
	}
	return nil, errors.Errorf("uri %s not supported", uri)
}
