package declfs

import (
	"context"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
	"github.com/je4/utils/v2/pkg/zLogger"
)

// Env is the evaluation environment handed down the declaration tree.
// It carries the backend bound by the innermost configuration scope, the
// logger and the name of the enclosing File declaration. Envs are
// immutable; scoping constructs derive new ones.
type Env struct {
	backend  backend.Backend
	logger   zLogger.ZLogger
	fileName string
}

// Backend returns the backend bound by the innermost configuration
// scope, or nil when none is in effect.
func (env *Env) Backend() backend.Backend {
	return env.backend
}

// CurrentDirectory returns the cursor of the active backend.
func (env *Env) CurrentDirectory(ctx context.Context) (fspath.Path, error) {
	if env.backend == nil {
		return fspath.Path{}, errors.WithStack(&UnconfiguredError{Op: "read current directory"})
	}
	return env.backend.CurrentDirectory(ctx)
}

// CurrentFileName returns the name of the enclosing File declaration, or
// "" outside of File children.
func (env *Env) CurrentFileName() string {
	return env.fileName
}

func (env *Env) Logger() zLogger.ZLogger {
	return env.logger
}

func (env *Env) withBackend(b backend.Backend) *Env {
	derived := *env
	derived.backend = b
	return &derived
}

func (env *Env) withFileName(name string) *Env {
	derived := *env
	derived.fileName = name
	return &derived
}

// WithBackend binds a backend for the dynamic extent of child. Nested
// bindings shadow outer ones; each bound backend carries its own cursor.
func WithBackend(b backend.Backend, child Declaration) Declaration {
	return &scopeDecl{backend: b, child: child}
}

type scopeDecl struct {
	backend backend.Backend
	child   Declaration
}

func (s *scopeDecl) Evaluate(ctx context.Context, env *Env) (string, error) {
	if s.child == nil {
		return "", nil
	}
	return s.child.Evaluate(ctx, env.withBackend(s.backend))
}

var (
	_ Declaration = &scopeDecl{}
)
