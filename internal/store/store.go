package store

import (
	"github.com/google/uuid"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
)

// Store holds the booking state for exactly one session. It is not safe
// for concurrent use; the flow controller serializes access.
type Store struct {
	state models.BookingState
}

func New() *Store {
	return &Store{state: models.InitialBookingState()}
}

// State returns a deep copy of the current state.
func (s *Store) State() models.BookingState {
	return s.state.Clone()
}

// Apply runs one transition and returns the resulting state. The
// function is total over the event set; unknown events leave the state
// unchanged.
func (s *Store) Apply(ev Event) models.BookingState {
	s.state = reduce(s.state, ev)
	return s.State()
}

func reduce(state models.BookingState, ev Event) models.BookingState {
	switch e := ev.(type) {
	case SetStep:
		state.Step = e.Step

	case SetSearch:
		if e.FromStation != nil {
			state.FromStation = *e.FromStation
		}
		if e.ToStation != nil {
			state.ToStation = *e.ToStation
		}
		if e.Date != nil {
			state.Date = *e.Date
		}
		if e.TravelClass != nil {
			state.TravelClass = *e.TravelClass
		}
		if e.Quota != nil {
			state.Quota = *e.Quota
		}

	case SetTrain:
		train := e.Train
		train.Classes = append([]models.FareClass(nil), e.Train.Classes...)
		state.SelectedTrain = &train

	case SetClass:
		class := e.Class
		state.SelectedClass = &class

	case ReplacePassengers:
		state.Passengers = append([]models.Passenger{}, e.Passengers...)

	case AddPassenger:
		p := e.Passenger
		if p.ID == "" {
			p.ID = freshID(state.Passengers)
		}
		state.Passengers = append(append([]models.Passenger{}, state.Passengers...), p)

	case UpdatePassenger:
		out := make([]models.Passenger, len(state.Passengers))
		for i, p := range state.Passengers {
			if p.ID == e.ID {
				p = e.Patch.Apply(p)
			}
			out[i] = p
		}
		state.Passengers = out

	case RemovePassenger:
		if len(state.Passengers) <= 1 {
			break
		}
		out := make([]models.Passenger, 0, len(state.Passengers))
		for _, p := range state.Passengers {
			if p.ID != e.ID {
				out = append(out, p)
			}
		}
		state.Passengers = out

	case SetContact:
		state.ContactEmail = e.Email
		state.ContactPhone = e.Phone

	case SetPaymentMethod:
		state.PaymentMethod = e.Method

	case SetBookingStatus:
		state.BookingStatus = e.Status

	case SetPNR:
		if state.PNR == "" {
			state.PNR = e.PNR
		}

	case SetError:
		state.Error = e.Message

	case Reset:
		state = models.InitialBookingState()
	}

	return state
}

func freshID(existing []models.Passenger) string {
	for {
		id := uuid.NewString()
		taken := false
		for _, p := range existing {
			if p.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
