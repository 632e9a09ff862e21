// Package store owns the booking state and the event-driven transition
// function that is the only way to mutate it.
package store

import (
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
)

// Event is the closed set of booking transitions. Apply treats anything
// outside this set as a no-op.
type Event interface {
	isEvent()
}

// SetStep moves the 0-based flow position.
type SetStep struct {
	Step int
}

// SetSearch partially merges the search criteria; nil fields keep their
// current value.
type SetSearch struct {
	FromStation *string
	ToStation   *string
	Date        *string
	TravelClass *domain.TravelClass
	Quota       *domain.Quota
}

// SetTrain records the picked train offering.
type SetTrain struct {
	Train models.TrainOffering
}

// SetClass records the picked fare class. The flow controller writes it
// together with SetTrain so the pair stays consistent.
type SetClass struct {
	Class models.FareClass
}

// ReplacePassengers swaps the whole passenger list.
type ReplacePassengers struct {
	Passengers []models.Passenger
}

// AddPassenger appends a passenger. An empty ID is filled with a fresh
// one guaranteed distinct from every id already in the list.
type AddPassenger struct {
	Passenger models.Passenger
}

// UpdatePassenger merges a partial patch into the passenger with the
// given id; unknown ids are a no-op.
type UpdatePassenger struct {
	ID    string
	Patch models.PassengerPatch
}

// RemovePassenger deletes by id. Removal that would empty the list is a
// no-op: the minimum-one policy belongs to the caller, but the store
// never silently drops below one.
type RemovePassenger struct {
	ID string
}

// SetContact replaces email and phone together.
type SetContact struct {
	Email string
	Phone string
}

type SetPaymentMethod struct {
	Method domain.PaymentMethod
}

type SetBookingStatus struct {
	Status domain.BookingStatus
}

// SetPNR records the reference code. Once set it is immutable until reset.
type SetPNR struct {
	PNR string
}

// SetError attaches a user-facing error message; empty clears it.
type SetError struct {
	Message string
}

// Reset returns the state to all-defaults.
type Reset struct{}

func (SetStep) isEvent()           {}
func (SetSearch) isEvent()         {}
func (SetTrain) isEvent()          {}
func (SetClass) isEvent()          {}
func (ReplacePassengers) isEvent() {}
func (AddPassenger) isEvent()      {}
func (UpdatePassenger) isEvent()   {}
func (RemovePassenger) isEvent()   {}
func (SetContact) isEvent()        {}
func (SetPaymentMethod) isEvent()  {}
func (SetBookingStatus) isEvent()  {}
func (SetPNR) isEvent()            {}
func (SetError) isEvent()          {}
func (Reset) isEvent()             {}
