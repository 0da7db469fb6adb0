package manifest

import (
	"strings"

	"emperror.dev/errors"
	"github.com/je4/declfs/pkg/declfs"
	"github.com/je4/declfs/pkg/fspath"
)

func parseMode(name string) (declfs.Mode, error) {
	switch strings.ToLower(name) {
	case "", "timid":
		return declfs.ModeTimid, nil
	case "placid":
		return declfs.ModePlacid, nil
	case "assertive":
		return declfs.ModeAssertive, nil
	}
	return declfs.ModeTimid, errors.Errorf("unknown mode '%s'", name)
}

// Declaration builds the declaration tree described by the manifest.
// Entries evaluate in manifest order.
func (conf *Config) Declaration() (declfs.Declaration, error) {
	var decls []declfs.Declaration
	for _, entry := range conf.Entry {
		decl, err := entryDeclaration(entry)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		decls = append(decls, decl)
	}
	return declfs.Group(decls...), nil
}

func entryDeclaration(entry *Entry) (declfs.Declaration, error) {
	comps := strings.Split(entry.Path, "/")
	for _, comp := range comps {
		if err := fspath.Validate(comp); err != nil {
			return nil, errors.Wrapf(err, "invalid path '%s'", entry.Path)
		}
	}
	mode, err := parseMode(entry.Mode)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid entry '%s'", entry.Path)
	}
	leaf := comps[len(comps)-1]
	var decl declfs.Declaration
	switch strings.ToLower(entry.Kind) {
	case "dir":
		decl = declfs.Dir(leaf, declfs.WithMode(mode))
	case "", "file":
		opts := []declfs.Option{
			declfs.WithMode(mode),
			declfs.WithChildren(declfs.Text(string(entry.Content))),
		}
		if entry.Forward {
			opts = append(opts, declfs.ForwardContent())
		}
		decl = declfs.File(leaf, opts...)
	default:
		return nil, errors.Errorf("unknown kind '%s' for '%s'", entry.Kind, entry.Path)
	}
	// intermediate components become placid directories so pre-existing
	// parents are tolerated
	for i := len(comps) - 2; i >= 0; i-- {
		decl = declfs.Dir(comps[i], declfs.WithMode(declfs.ModePlacid), declfs.WithChildren(decl))
	}
	return decl, nil
}
