package models

import "github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"

// Passenger is one traveller on the booking. ID is generated when the
// passenger is added and is the only key used for updates and removal;
// it is never derived from list position.
type Passenger struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Age             string                 `json:"age"`
	Gender          domain.Gender          `json:"gender"`
	BerthPreference domain.BerthPreference `json:"berthPreference"`
	IDType          domain.IDProofType     `json:"idType"`
	IDNumber        string                 `json:"idNumber"`
}

// BlankPassenger returns the empty record seeded when the passenger step
// is first entered. The caller assigns the id.
func BlankPassenger() Passenger {
	return Passenger{BerthPreference: domain.BerthNoPreference}
}

// PassengerPatch is a partial update; nil fields are left untouched.
type PassengerPatch struct {
	Name            *string                 `json:"name"`
	Age             *string                 `json:"age"`
	Gender          *domain.Gender          `json:"gender"`
	BerthPreference *domain.BerthPreference `json:"berthPreference"`
	IDType          *domain.IDProofType     `json:"idType"`
	IDNumber        *string                 `json:"idNumber"`
}

// Apply merges the patch into a copy of p.
func (patch PassengerPatch) Apply(p Passenger) Passenger {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.BerthPreference != nil {
		p.BerthPreference = *patch.BerthPreference
	}
	if patch.IDType != nil {
		p.IDType = *patch.IDType
	}
	if patch.IDNumber != nil {
		p.IDNumber = *patch.IDNumber
	}
	return p
}
