package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/centroops/guardia/pkg/core/calendar"
	"github.com/centroops/guardia/pkg/core/model"
)

func contextsFor(people []model.Person, incidents []model.Incident, exchanges []model.Exchange) map[string]model.EffectiveSwapContext {
	return BuildContexts(testDate, people, nil, incidents, exchanges, calendar.New(nil), zap.NewNop())
}

func TestValidateOperation_CoverOK(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}

	msg := ValidateOperation(model.ExchangeCover, "juan", "pedro", model.ShiftDay, contextsFor(people, nil, nil), people)
	assert.Empty(t, msg)
}

func TestValidateOperation_CoverRejectedWhenReceiverHoldsShift(t *testing.T) {
	// Pedro already works DAY, so he cannot cover Juan's DAY shift.
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftDay),
	}

	msg := ValidateOperation(model.ExchangeCover, "juan", "pedro", model.ShiftDay, contextsFor(people, nil, nil), people)
	assert.Equal(t, "Pedro no está disponible para cubrir el turno DAY", msg)
}

func TestValidateOperation_CoverRejectedWhenNothingToCover(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftNight),
		testPerson("pedro", "Pedro", model.ShiftDay),
	}

	msg := ValidateOperation(model.ExchangeCover, "juan", "pedro", model.ShiftDay, contextsFor(people, nil, nil), people)
	assert.Contains(t, msg, "Juan no tiene el turno DAY")
}

func TestValidateOperation_CoverRejectedForBlockedReceiver(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}
	incidents := []model.Incident{
		{ID: "l1", PersonID: "pedro", Type: model.IncidentLicencia, StartDate: testDate, Duration: 2},
	}

	msg := ValidateOperation(model.ExchangeCover, "juan", "pedro", model.ShiftDay, contextsFor(people, incidents, nil), people)
	assert.Equal(t, "Pedro no está disponible por licencia o vacaciones", msg)
}

func TestValidateOperation_CoverStructuralRejections(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}
	contexts := contextsFor(people, nil, nil)

	tests := []struct {
		name   string
		fromID string
		toID   string
	}{
		{"missing from", "", "pedro"},
		{"missing to", "juan", ""},
		{"self cover", "juan", "juan"},
		{"unknown person", "juan", "nadie"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := ValidateOperation(model.ExchangeCover, tc.fromID, tc.toID, model.ShiftDay, contexts, people)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestValidateOperation_SwapOK(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}

	msg := ValidateOperation(model.ExchangeSwap, "juan", "pedro", "", contextsFor(people, nil, nil), people)
	assert.Empty(t, msg)
}

func TestValidateOperation_SwapNoOpRejected(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftDay),
	}

	msg := ValidateOperation(model.ExchangeSwap, "juan", "pedro", "", contextsFor(people, nil, nil), people)
	assert.Contains(t, msg, "no tiene efecto")
}

func TestValidateOperation_SwapRejectedWhenSideHasNoShifts(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}
	incidents := []model.Incident{
		{ID: "v1", PersonID: "juan", Type: model.IncidentVacaciones, StartDate: testDate, Duration: 1},
	}

	msg := ValidateOperation(model.ExchangeSwap, "juan", "pedro", "", contextsFor(people, incidents, nil), people)
	assert.Equal(t, "Juan no está disponible por licencia o vacaciones", msg)
}

func TestValidateOperation_DoubleOK(t *testing.T) {
	people := []model.Person{testPerson("juan", "Juan", model.ShiftDay)}

	msg := ValidateOperation(model.ExchangeDouble, "", "juan", model.ShiftNight, contextsFor(people, nil, nil), people)
	assert.Empty(t, msg)
}

func TestValidateOperation_DoubleRejectedWhenAlreadyHeld(t *testing.T) {
	people := []model.Person{testPerson("juan", "Juan", model.ShiftDay)}

	msg := ValidateOperation(model.ExchangeDouble, "", "juan", model.ShiftDay, contextsFor(people, nil, nil), people)
	assert.Equal(t, "Juan ya tiene el turno DAY ese día", msg)
}

func TestValidateOperation_PanicsOnMalformedKind(t *testing.T) {
	assert.Panics(t, func() {
		ValidateOperation("TRIPLE", "a", "b", model.ShiftDay, nil, nil)
	})
}

func TestValidateNoConflict_CoverAgainstMovedShift(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
		testPerson("maria", "Maria", model.ShiftNight),
	}
	// Juan's DAY shift was already covered by Maria.
	existing := []model.Exchange{
		{ID: "e1", Date: testDate, Kind: model.ExchangeCover, FromPersonID: "juan", ToPersonID: "maria", Shift: model.ShiftDay},
	}
	proposed := model.Exchange{
		ID: "e2", Date: testDate, Kind: model.ExchangeCover,
		FromPersonID: "juan", ToPersonID: "pedro", Shift: model.ShiftDay,
	}

	err := ValidateNoConflict(proposed, existing, people, nil, nil, calendar.New(nil), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer holds")
}

func TestValidateNoConflict_CleanProposal(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}
	proposed := model.Exchange{
		ID: "e1", Date: testDate, Kind: model.ExchangeCover,
		FromPersonID: "juan", ToPersonID: "pedro", Shift: model.ShiftDay,
	}

	assert.NoError(t, ValidateNoConflict(proposed, nil, people, nil, nil, calendar.New(nil), zap.NewNop()))
}

func TestValidateNoConflict_DoubleAlreadyHeld(t *testing.T) {
	people := []model.Person{testPerson("juan", "Juan", model.ShiftDay)}
	proposed := model.Exchange{
		ID: "e1", Date: testDate, Kind: model.ExchangeDouble,
		PersonID: "juan", Shift: model.ShiftDay,
	}

	err := ValidateNoConflict(proposed, nil, people, nil, nil, calendar.New(nil), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already holds")
}

func TestValidateNoConflict_PanicsOnMalformedKind(t *testing.T) {
	assert.Panics(t, func() {
		_ = ValidateNoConflict(model.Exchange{Kind: "TRIPLE", Date: testDate}, nil, nil, nil, nil, calendar.New(nil), zap.NewNop())
	})
}

func TestAssertNoDuplicateClaims_CleanHistory(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftNight),
	}
	exchanges := []model.Exchange{
		{ID: "e1", Date: testDate, Kind: model.ExchangeCover, FromPersonID: "juan", ToPersonID: "pedro", Shift: model.ShiftDay},
	}

	assert.NotPanics(t, func() {
		AssertNoDuplicateClaims(testDate, people, nil, nil, exchanges, calendar.New(nil), zap.NewNop())
	})
}

func TestAssertNoDuplicateClaims_PanicsOnDuplicateCover(t *testing.T) {
	people := []model.Person{
		testPerson("juan", "Juan", model.ShiftDay),
		testPerson("pedro", "Pedro", model.ShiftDay),
	}
	// Pedro already effectively holds DAY; a stored cover granting it
	// again means an exchange bypassed validation.
	exchanges := []model.Exchange{
		{ID: "e1", Date: testDate, Kind: model.ExchangeCover, FromPersonID: "juan", ToPersonID: "pedro", Shift: model.ShiftDay},
	}

	assert.Panics(t, func() {
		AssertNoDuplicateClaims(testDate, people, nil, nil, exchanges, calendar.New(nil), zap.NewNop())
	})
}
