package declfs

import (
	"context"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/backend"
	"github.com/je4/declfs/pkg/fspath"
)

// File declares a data object named name under the current directory of
// the active backend, with the children's result as content. The
// children are evaluated before the target is probed, so content errors
// surface without any backend interaction. The declaration's result is
// "" unless ForwardContent is set, in which case it is the produced
// content even when the write was suppressed by mode.
func File(name string, opts ...Option) Declaration {
	return &fileDecl{name: name, declOptions: buildOptions(opts)}
}

type fileDecl struct {
	name string
	declOptions
}

func (f *fileDecl) Evaluate(ctx context.Context, env *Env) (string, error) {
	if err := fspath.Validate(f.name); err != nil {
		return "", errors.WithStack(&ValidationError{Name: f.name, Err: err})
	}
	var content string
	if f.children != nil {
		var err error
		content, err = f.children.Evaluate(ctx, env.withFileName(f.name))
		if err != nil {
			return "", errors.WithStack(err)
		}
	}
	b := env.backend
	if b == nil {
		return "", errors.WithStack(&UnconfiguredError{Op: "declare file '" + f.name + "'"})
	}
	cwd, err := b.CurrentDirectory(ctx)
	if err != nil {
		return "", errors.WithStack(&BackendError{Op: "read current directory", Err: err})
	}
	target := cwd.Append(f.name)
	existing, err := b.Stat(ctx, target)
	if err != nil {
		return "", errors.WithStack(&BackendError{Op: "stat", Path: target, Err: err})
	}
	switch Resolve(f.mode, existing, backend.KindData) {
	case ActionFail:
		return "", errors.WithStack(&ConflictError{Path: target, Existing: existing, Want: backend.KindData})
	case ActionProceed:
		if existing == backend.KindDirectory {
			if err := b.Remove(ctx, target); err != nil {
				return "", errors.WithStack(&BackendError{Op: "remove", Path: target, Err: err})
			}
		}
		if err := b.WriteTextContent(ctx, target, content); err != nil {
			return "", errors.WithStack(&BackendError{Op: "write", Path: target, Err: err})
		}
	case ActionSkip:
		env.logger.Debug().Msgf("leaving existing %s '%s' untouched", existing, target)
	}
	if f.forward {
		return content, nil
	}
	return "", nil
}

var (
	_ Declaration = &fileDecl{}
)
