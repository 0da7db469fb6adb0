package declfs

import (
	"context"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
)

// Dir declares a directory named name under the current directory of the
// active backend. Whether an existing target blocks, is tolerated or is
// replaced depends on the mode; the children are evaluated either way,
// with the cursor moved into the target for their duration. The
// declaration's result is the children's result.
func Dir(name string, opts ...Option) Declaration {
	return &dirDecl{name: name, declOptions: buildOptions(opts)}
}

type dirDecl struct {
	name string
	declOptions
}

func (d *dirDecl) Evaluate(ctx context.Context, env *Env) (string, error) {
	if err := fspath.Validate(d.name); err != nil {
		return "", errors.WithStack(&ValidationError{Name: d.name, Err: err})
	}
	b := env.backend
	if b == nil {
		return "", errors.WithStack(&UnconfiguredError{Op: "declare directory '" + d.name + "'"})
	}
	cwd, err := b.CurrentDirectory(ctx)
	if err != nil {
		return "", errors.WithStack(&BackendError{Op: "read current directory", Err: err})
	}
	target := cwd.Append(d.name)
	existing, err := b.Stat(ctx, target)
	if err != nil {
		return "", errors.WithStack(&BackendError{Op: "stat", Path: target, Err: err})
	}
	switch Resolve(d.mode, existing, backend.KindDirectory) {
	case ActionFail:
		return "", errors.WithStack(&ConflictError{Path: target, Existing: existing, Want: backend.KindDirectory})
	case ActionProceed:
		if existing != backend.KindAbsent {
			if err := b.Remove(ctx, target); err != nil {
				return "", errors.WithStack(&BackendError{Op: "remove", Path: target, Err: err})
			}
		}
		if err := b.CreateDirectory(ctx, target); err != nil {
			return "", errors.WithStack(&BackendError{Op: "create directory", Path: target, Err: err})
		}
	case ActionSkip:
		env.logger.Debug().Msgf("leaving existing %s '%s' untouched", existing, target)
	}
	if d.children == nil {
		return "", nil
	}
	return d.descend(ctx, env, target)
}

// descend evaluates the children with the cursor moved into the target
// directory. The matching ascent runs on every exit path so that
// following siblings always observe the cursor they expect.
func (d *dirDecl) descend(ctx context.Context, env *Env, target fspath.Path) (result string, err error) {
	b := env.backend
	if cerr := b.ChangeDirectory(ctx, fspath.Rel(d.name)); cerr != nil {
		return "", errors.WithStack(&BackendError{Op: "descend into", Path: target, Err: cerr})
	}
	defer func() {
		if aerr := b.ChangeDirectory(ctx, fspath.Up()); aerr != nil && err == nil {
			result = ""
			err = errors.WithStack(&BackendError{Op: "ascend from", Path: target, Err: aerr})
		}
	}()
	result, err = d.children.Evaluate(ctx, env)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return result, nil
}

var (
	_ Declaration = &dirDecl{}
)
