package models

import "github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"

// BookingState is the single authoritative state of one in-progress (or
// completed) booking. It is owned exclusively by the store and mutated
// only through events; everything else reads copies.
type BookingState struct {
	Step          int                  `json:"step"`
	FromStation   string               `json:"fromStation"`
	ToStation     string               `json:"toStation"`
	Date          string               `json:"date"`
	TravelClass   domain.TravelClass   `json:"travelClass"`
	Quota         domain.Quota         `json:"quota"`
	SelectedTrain *TrainOffering       `json:"selectedTrain"`
	SelectedClass *FareClass           `json:"selectedClass"`
	Passengers    []Passenger          `json:"passengers"`
	ContactEmail  string               `json:"contactEmail"`
	ContactPhone  string               `json:"contactPhone"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	PNR           string               `json:"pnr"`
	BookingStatus domain.BookingStatus `json:"bookingStatus"`
	Error         string               `json:"error,omitempty"`
}

// InitialBookingState returns the documented all-defaults state. Reset
// must yield exactly this value, never a partially cleared copy.
func InitialBookingState() BookingState {
	return BookingState{
		Step:          0,
		TravelClass:   domain.ClassSleeper,
		Quota:         domain.QuotaGeneral,
		Passengers:    []Passenger{},
		BookingStatus: domain.StatusIdle,
	}
}

// Clone returns a deep copy so callers can never alias store-owned slices
// or the selected train/class.
func (s BookingState) Clone() BookingState {
	out := s
	if s.SelectedTrain != nil {
		train := *s.SelectedTrain
		train.Classes = append([]FareClass(nil), s.SelectedTrain.Classes...)
		out.SelectedTrain = &train
	}
	if s.SelectedClass != nil {
		class := *s.SelectedClass
		out.SelectedClass = &class
	}
	out.Passengers = append([]Passenger{}, s.Passengers...)
	return out
}
