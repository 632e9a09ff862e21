package validate

import (
	"testing"
	"time"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
)

func validPassenger() models.Passenger {
	return models.Passenger{
		ID:              "p1",
		Name:            "Rahul Kumar",
		Age:             "28",
		Gender:          domain.GenderMale,
		BerthPreference: domain.BerthNoPreference,
	}
}

func TestPassenger(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Passenger)
		fields []string
	}{
		{name: "valid", mutate: func(p *models.Passenger) {}, fields: nil},
		{name: "age one ok", mutate: func(p *models.Passenger) { p.Age = "1" }, fields: nil},
		{name: "age 125 ok", mutate: func(p *models.Passenger) { p.Age = "125" }, fields: nil},
		{name: "age zero", mutate: func(p *models.Passenger) { p.Age = "0" }, fields: []string{"age"}},
		{name: "age 126", mutate: func(p *models.Passenger) { p.Age = "126" }, fields: []string{"age"}},
		{name: "age not a number", mutate: func(p *models.Passenger) { p.Age = "abc" }, fields: []string{"age"}},
		{name: "age empty", mutate: func(p *models.Passenger) { p.Age = "" }, fields: []string{"age"}},
		{name: "empty name", mutate: func(p *models.Passenger) { p.Name = "" }, fields: []string{"name"}},
		{name: "whitespace name", mutate: func(p *models.Passenger) { p.Name = "   " }, fields: []string{"name"}},
		{name: "gender unset", mutate: func(p *models.Passenger) { p.Gender = domain.GenderUnset }, fields: []string{"gender"}},
		{name: "id proof optional", mutate: func(p *models.Passenger) { p.IDType = ""; p.IDNumber = "" }, fields: nil},
		{
			name: "everything wrong",
			mutate: func(p *models.Passenger) {
				p.Name = " "
				p.Age = "200"
				p.Gender = domain.GenderUnset
			},
			fields: []string{"name", "age", "gender"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPassenger()
			tc.mutate(&p)
			errs := Passenger(p)
			if len(errs) != len(tc.fields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tc.fields))
			}
			for _, f := range tc.fields {
				if _, ok := errs[f]; !ok {
					t.Fatalf("expected error on %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestPassengerDoesNotMutateInput(t *testing.T) {
	p := validPassenger()
	before := p
	for i := 0; i < 3; i++ {
		Passenger(p)
	}
	if p != before {
		t.Fatalf("input mutated: %+v -> %+v", before, p)
	}
}

func TestContact(t *testing.T) {
	cases := []struct {
		name   string
		email  string
		phone  string
		fields []string
	}{
		{name: "valid", email: "a@b.in", phone: "9876543210", fields: nil},
		{name: "phone nine digits", email: "a@b.in", phone: "987654321", fields: []string{"phone"}},
		{name: "phone ten digits ok", email: "a@b.in", phone: "0123456789", fields: nil},
		{name: "no at sign", email: "not-an-email", phone: "9876543210", fields: []string{"email"}},
		{name: "both empty", email: "", phone: "", fields: []string{"email", "phone"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Contact(tc.email, tc.phone)
			if len(errs) != len(tc.fields) {
				t.Fatalf("got %v, want errors on %v", errs, tc.fields)
			}
			for _, f := range tc.fields {
				if _, ok := errs[f]; !ok {
					t.Fatalf("expected error on %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestSearch(t *testing.T) {
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	tomorrow := "2026-08-29"

	t.Run("valid", func(t *testing.T) {
		errs := Search("NDLS", "HWH", tomorrow, today)
		if !errs.Ok() {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("same station", func(t *testing.T) {
		errs := Search("NDLS", "NDLS", tomorrow, today)
		if errs["to"] != "Arrival station must be different from departure" {
			t.Fatalf("got %v", errs)
		}
	})

	t.Run("today is allowed", func(t *testing.T) {
		errs := Search("NDLS", "HWH", "2026-08-28", today)
		if !errs.Ok() {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("past date", func(t *testing.T) {
		errs := Search("NDLS", "HWH", "2026-08-27", today)
		if errs["date"] != "Travel date cannot be in the past" {
			t.Fatalf("got %v", errs)
		}
	})

	t.Run("missing everything", func(t *testing.T) {
		errs := Search("", "", "", today)
		for _, f := range []string{"from", "to", "date"} {
			if _, ok := errs[f]; !ok {
				t.Fatalf("expected error on %q, got %v", f, errs)
			}
		}
	})

	t.Run("garbage date", func(t *testing.T) {
		errs := Search("NDLS", "HWH", "not-a-date", today)
		if _, ok := errs["date"]; !ok {
			t.Fatalf("expected date error, got %v", errs)
		}
	})
}
