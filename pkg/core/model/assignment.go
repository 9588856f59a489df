package model

import "fmt"

// AssignmentKind tags a ShiftAssignment variant.
type AssignmentKind string

const (
	AssignmentNone   AssignmentKind = "NONE"
	AssignmentSingle AssignmentKind = "SINGLE"
	AssignmentBoth   AssignmentKind = "BOTH"
)

// ShiftAssignment is a tagged variant NONE | SINGLE(shift) | BOTH. It is
// used both as a nominal plan entry and as an override payload. Shift is
// meaningful only when Kind is SINGLE.
type ShiftAssignment struct {
	Kind  AssignmentKind `json:"kind"`
	Shift Shift          `json:"shift,omitempty"`
}

func NoAssignment() ShiftAssignment {
	return ShiftAssignment{Kind: AssignmentNone}
}

func SingleAssignment(s Shift) ShiftAssignment {
	return ShiftAssignment{Kind: AssignmentSingle, Shift: s}
}

func BothAssignment() ShiftAssignment {
	return ShiftAssignment{Kind: AssignmentBoth}
}

// AssignmentFromSet derives the variant from a shift set.
func AssignmentFromSet(set ShiftSet) ShiftAssignment {
	switch set.Count() {
	case 0:
		return NoAssignment()
	case 1:
		s, _ := set.Single()
		return SingleAssignment(s)
	default:
		return BothAssignment()
	}
}

// ShiftSet expands the assignment into a shift set. An unknown kind is an
// invariant violation: a malformed assignment would corrupt downstream
// coverage and disciplinary accounting, so it aborts loudly.
func (a ShiftAssignment) ShiftSet() ShiftSet {
	switch a.Kind {
	case AssignmentNone, "":
		return 0
	case AssignmentSingle:
		return NewShiftSet(a.Shift)
	case AssignmentBoth:
		return NewShiftSet(ShiftDay, ShiftNight)
	default:
		panic(fmt.Sprintf("malformed shift assignment kind %q", a.Kind))
	}
}

func (a ShiftAssignment) IsNone() bool {
	return a.Kind == AssignmentNone || a.Kind == ""
}

func (a ShiftAssignment) String() string {
	switch a.Kind {
	case AssignmentNone, "":
		return "NONE"
	case AssignmentSingle:
		return fmt.Sprintf("SINGLE(%s)", a.Shift)
	case AssignmentBoth:
		return "BOTH"
	default:
		panic(fmt.Sprintf("malformed shift assignment kind %q", a.Kind))
	}
}
