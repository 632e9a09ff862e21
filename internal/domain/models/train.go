package models

import "github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"

// TrainOffering is one train returned by the result provider. The class
// slice is presentation-ordered and always has at least one entry.
type TrainOffering struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Number           string      `json:"number"`
	DepartureTime    string      `json:"departureTime"`
	ArrivalTime      string      `json:"arrivalTime"`
	Duration         string      `json:"duration"`
	DepartureStation string      `json:"departureStation"`
	ArrivalStation   string      `json:"arrivalStation"`
	Classes          []FareClass `json:"classes"`
}

// Class returns the fare class with the given code, if the train carries it.
func (t TrainOffering) Class(code string) (FareClass, bool) {
	for _, c := range t.Classes {
		if c.Code == code {
			return c, true
		}
	}
	return FareClass{}, false
}

// FareClass is a priced travel category on a specific train. Fare is in
// whole rupees. AvailableSeats is meaningful only when availability is
// "available", WaitlistNumber only when it is "waitlist".
type FareClass struct {
	Code           string              `json:"code"`
	Name           string              `json:"name"`
	Fare           int64               `json:"fare"`
	Availability   domain.Availability `json:"availability"`
	AvailableSeats int                 `json:"availableSeats,omitempty"`
	WaitlistNumber int                 `json:"waitlistNumber,omitempty"`
}

// Selectable reports whether the class may be picked at all. Waitlist and
// RAC classes stay selectable; only "unavailable" is refused.
func (c FareClass) Selectable() bool {
	return c.Availability != domain.Unavailable
}
