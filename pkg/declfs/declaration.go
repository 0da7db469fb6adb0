package declfs

import (
	"context"
	"strings"

	"emperror.dev/errors"
)

// Declaration is a node of the document tree. Evaluate runs the node's
// side effects against the environment's backend and returns the node's
// result value. Evaluation is strict depth-first, document order; the
// first error halts the whole tree.
type Declaration interface {
	Evaluate(ctx context.Context, env *Env) (string, error)
}

// Func adapts a plain function into a Declaration. It is the extension
// point for declarations built atop this package.
type Func func(ctx context.Context, env *Env) (string, error)

func (f Func) Evaluate(ctx context.Context, env *Env) (string, error) {
	return f(ctx, env)
}

// Text declares a literal result with no side effect. It is the usual
// content producer for File children.
func Text(content string) Declaration {
	return textDecl(content)
}

type textDecl string

func (t textDecl) Evaluate(ctx context.Context, env *Env) (string, error) {
	return string(t), nil
}

// Group evaluates its members in document order and concatenates their
// results. The first error halts the group.
func Group(decls ...Declaration) Declaration {
	return groupDecl(decls)
}

type groupDecl []Declaration

func (g groupDecl) Evaluate(ctx context.Context, env *Env) (string, error) {
	var sb strings.Builder
	for _, decl := range g {
		result, err := decl.Evaluate(ctx, env)
		if err != nil {
			return "", errors.WithStack(err)
		}
		sb.WriteString(result)
	}
	return sb.String(), nil
}

var (
	_ Declaration = Func(nil)
	_ Declaration = textDecl("")
	_ Declaration = groupDecl(nil)
)
