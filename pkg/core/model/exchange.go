package model

import (
	"fmt"
	"time"
)

// ExchangeKind tags an Exchange variant.
type ExchangeKind string

const (
	// ExchangeCover moves a shift from one person to another: the covered
	// person stops working it and the covering person starts.
	ExchangeCover ExchangeKind = "COVER"
	// ExchangeDouble adds a shift beyond a person's base. It is the only
	// exchange kind that can grow an effective shift set past one.
	ExchangeDouble ExchangeKind = "DOUBLE"
	// ExchangeSwap trades shifts between two people.
	ExchangeSwap ExchangeKind = "SWAP"
)

func (k ExchangeKind) IsValid() bool {
	return k == ExchangeCover || k == ExchangeDouble || k == ExchangeSwap
}

// Exchange is a same-day re-assignment of shift responsibility layered
// atop the base plan. It is scoped to exactly one calendar date and is
// immutable; exchanges are ordered by creation time within a date.
//
// Field usage by kind:
//
//	COVER:  FromPersonID, ToPersonID, Shift
//	DOUBLE: PersonID, Shift
//	SWAP:   FromPersonID, FromShift, ToPersonID, ToShift
type Exchange struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	Kind         ExchangeKind `json:"kind"`
	PersonID     string       `json:"personId,omitempty"`
	FromPersonID string       `json:"fromPersonId,omitempty"`
	ToPersonID   string       `json:"toPersonId,omitempty"`
	Shift        Shift        `json:"shift,omitempty"`
	FromShift    Shift        `json:"fromShift,omitempty"`
	ToShift      Shift        `json:"toShift,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Participants returns the ids of every person the exchange touches.
func (e Exchange) Participants() []string {
	switch e.Kind {
	case ExchangeCover:
		return []string{e.FromPersonID, e.ToPersonID}
	case ExchangeDouble:
		return []string{e.PersonID}
	case ExchangeSwap:
		return []string{e.FromPersonID, e.ToPersonID}
	default:
		panic(fmt.Sprintf("malformed exchange kind %q", e.Kind))
	}
}

// ExchangesForDate filters exchanges scoped to the given date, preserving
// stored order.
func ExchangesForDate(exchanges []Exchange, date string) []Exchange {
	out := make([]Exchange, 0)
	for _, e := range exchanges {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}
