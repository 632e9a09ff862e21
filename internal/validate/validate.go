// Package validate holds the pure field validators the flow controller
// gates forward transitions on. Validators never mutate their input and
// may be re-run any number of times.
package validate

import (
	"strconv"
	"strings"
	"time"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

// FieldErrors maps a field name to a user-facing message. An empty map
// means the record is valid. It implements error so handlers can carry
// it across the flow boundary.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "valid"
	}
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Ok reports whether no field failed.
func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

const (
	minAge = 1
	maxAge = 125
)

// Passenger checks one passenger record. Berth preference and ID proof
// are optional and never produce errors.
func Passenger(p models.Passenger) FieldErrors {
	errs := FieldErrors{}
	if utils.TrimOrEmpty(p.Name) == "" {
		errs["name"] = "Name is required"
	}
	age, err := strconv.Atoi(utils.TrimOrEmpty(p.Age))
	if err != nil || age < minAge || age > maxAge {
		errs["age"] = "Enter valid age"
	}
	if !p.Gender.Valid() {
		errs["gender"] = "Select gender"
	}
	return errs
}

// Contact checks the booking contact record. The email rule is
// intentionally permissive; booking updates only need a deliverable-ish
// address, not full RFC validation.
func Contact(email, phone string) FieldErrors {
	errs := FieldErrors{}
	if len(phone) < 10 {
		errs["phone"] = "Enter a valid 10-digit mobile number"
	}
	if !strings.Contains(email, "@") {
		errs["email"] = "Enter a valid email address"
	}
	return errs
}

// Search checks the criteria gating search -> results. today is the
// caller's notion of the current date; a journey on today itself is
// allowed.
func Search(from, to, date string, today time.Time) FieldErrors {
	errs := FieldErrors{}
	from = utils.TrimOrEmpty(from)
	to = utils.TrimOrEmpty(to)
	date = utils.TrimOrEmpty(date)

	if from == "" {
		errs["from"] = "Please select a departure station"
	}
	if to == "" {
		errs["to"] = "Please select an arrival station"
	}
	if date == "" {
		errs["date"] = "Please select a travel date"
	}
	if from != "" && to != "" && from == to {
		errs["to"] = "Arrival station must be different from departure"
	}
	if date != "" {
		d, err := utils.ParseDate(date)
		if err != nil {
			errs["date"] = "Please select a travel date"
		} else if utils.BeforeDay(d, today) {
			errs["date"] = "Travel date cannot be in the past"
		}
	}
	return errs
}
