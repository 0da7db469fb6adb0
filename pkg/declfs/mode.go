package declfs

import "github.com/je4/declfs/pkg/backend"

// Mode is the conflict policy applied when a declaration's target path
// already exists. The zero value is ModeTimid, so an unspecified mode
// fails closed.
type Mode uint8

const (
	// ModeTimid errors on any pre-existing target.
	ModeTimid Mode = iota
	// ModePlacid leaves any pre-existing target untouched, whatever its
	// kind.
	ModePlacid
	// ModeAssertive replaces a pre-existing target.
	ModeAssertive
)

func (m Mode) String() string {
	switch m {
	case ModeTimid:
		return "timid"
	case ModePlacid:
		return "placid"
	case ModeAssertive:
		return "assertive"
	}
	return "unknown"
}

// Action is the resolver's verdict for a single declaration.
type Action uint8

const (
	ActionProceed Action = iota
	ActionSkip
	ActionFail
)

func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionSkip:
		return "skip"
	case ActionFail:
		return "fail"
	}
	return "unknown"
}

// Resolve decides how a declaration of the wanted kind handles the
// existing state of its target. The wanted kind does not influence the
// decision: placid deliberately ignores kind mismatches and assertive
// replaces whatever is there.
func Resolve(mode Mode, existing backend.Kind, want backend.Kind) Action {
	if existing == backend.KindAbsent {
		return ActionProceed
	}
	switch mode {
	case ModeTimid:
		return ActionFail
	case ModePlacid:
		return ActionSkip
	case ModeAssertive:
		return ActionProceed
	}
	return ActionFail
}
