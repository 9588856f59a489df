package model

import (
	"fmt"
	"strings"
)

// ShiftSet is a set of shifts packed into two bits. A person's effective
// shift set for a day never holds more than the two shifts, so a flag set
// avoids a heap allocation per person-day.
type ShiftSet uint8

const (
	shiftSetDay   ShiftSet = 1 << 0
	shiftSetNight ShiftSet = 1 << 1
)

// NewShiftSet builds a set from the given shifts.
func NewShiftSet(shifts ...Shift) ShiftSet {
	var set ShiftSet
	for _, s := range shifts {
		set = set.With(s)
	}
	return set
}

// shiftBit aborts on an unknown shift: mapping it onto either bit would
// silently corrupt coverage and disciplinary accounting downstream.
func shiftBit(s Shift) ShiftSet {
	switch s {
	case ShiftDay:
		return shiftSetDay
	case ShiftNight:
		return shiftSetNight
	default:
		panic(fmt.Sprintf("malformed shift %q", s))
	}
}

func (set ShiftSet) Has(s Shift) bool {
	return set&shiftBit(s) != 0
}

// With returns a copy of the set with the shift added.
func (set ShiftSet) With(s Shift) ShiftSet {
	return set | shiftBit(s)
}

// Without returns a copy of the set with the shift removed.
func (set ShiftSet) Without(s Shift) ShiftSet {
	return set &^ shiftBit(s)
}

func (set ShiftSet) Count() int {
	n := 0
	if set.Has(ShiftDay) {
		n++
	}
	if set.Has(ShiftNight) {
		n++
	}
	return n
}

func (set ShiftSet) IsEmpty() bool {
	return set == 0
}

// Shifts returns the members in DAY, NIGHT order.
func (set ShiftSet) Shifts() []Shift {
	shifts := make([]Shift, 0, 2)
	if set.Has(ShiftDay) {
		shifts = append(shifts, ShiftDay)
	}
	if set.Has(ShiftNight) {
		shifts = append(shifts, ShiftNight)
	}
	return shifts
}

// Single returns the only member of a one-element set.
func (set ShiftSet) Single() (Shift, bool) {
	if set.Count() != 1 {
		return "", false
	}
	if set.Has(ShiftDay) {
		return ShiftDay, true
	}
	return ShiftNight, true
}

func (set ShiftSet) String() string {
	if set.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, 2)
	for _, s := range set.Shifts() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, "+")
}
