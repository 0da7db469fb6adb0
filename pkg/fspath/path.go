package fspath

import (
	"strings"

	"emperror.dev/errors"
)

// Separator is the component separator in rendered paths.
const Separator = "/"

// Validate checks that name is usable as a single path component.
// A valid component is non-empty, contains no separator and is neither
// '.' nor '..'.
func Validate(name string) error {
	switch {
	case name == "":
		return errors.New("empty path component")
	case name == "." || name == "..":
		return errors.Errorf("path component '%s' is a relative reference", name)
	case strings.Contains(name, Separator):
		return errors.Errorf("path component '%s' contains '%s'", name, Separator)
	}
	return nil
}

func IsValid(name string) bool {
	return Validate(name) == nil
}

// Path is an ordered sequence of path components. The zero value is the
// empty relative path.
type Path struct {
	abs   bool
	comps []string
}

// Root returns the absolute path with no components.
func Root() Path {
	return Path{abs: true}
}

// Rel returns a relative path of the given components.
func Rel(comps ...string) Path {
	return Path{comps: comps}
}

// Up returns the relative path ascending exactly one level.
func Up() Path {
	return Path{comps: []string{".."}}
}

func (p Path) IsAbs() bool {
	return p.abs
}

func (p Path) Len() int {
	return len(p.comps)
}

// Components returns a copy of the component sequence.
func (p Path) Components() []string {
	comps := make([]string, len(p.comps))
	copy(comps, p.comps)
	return comps
}

// Base returns the last component or "" for an empty path.
func (p Path) Base() string {
	if len(p.comps) == 0 {
		return ""
	}
	return p.comps[len(p.comps)-1]
}

// Append returns a new path with name appended. The receiver is not
// modified.
func (p Path) Append(name string) Path {
	comps := make([]string, len(p.comps)+1)
	copy(comps, p.comps)
	comps[len(p.comps)] = name
	return Path{abs: p.abs, comps: comps}
}

// Parent returns the path with the last component removed. The parent of
// an empty path is the empty path itself.
func (p Path) Parent() Path {
	if len(p.comps) == 0 {
		return Path{abs: p.abs}
	}
	comps := make([]string, len(p.comps)-1)
	copy(comps, p.comps[:len(p.comps)-1])
	return Path{abs: p.abs, comps: comps}
}

// Equal reports component-wise equality.
func (p Path) Equal(other Path) bool {
	if p.abs != other.abs || len(p.comps) != len(other.comps) {
		return false
	}
	for i, comp := range p.comps {
		if other.comps[i] != comp {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	if p.abs {
		return Separator + strings.Join(p.comps, Separator)
	}
	return strings.Join(p.comps, Separator)
}
