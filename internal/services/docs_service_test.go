package services

import (
	"strings"
	"testing"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/fare"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	loader := func(id string) (ticketData, error) {
		return ticketData{
			PNR:           "4837291056",
			TrainName:     "Rajdhani Express",
			TrainNumber:   "12301",
			FromStation:   "New Delhi (NDLS)",
			ToStation:     "Howrah Junction (HWH)",
			Date:          "2026-08-29",
			DepartureTime: "16:55",
			ArrivalTime:   "10:25",
			ClassCode:     "3A",
			ClassName:     "AC 3 Tier",
			Quota:         "general",
			Passengers: []ticketPassenger{
				{Name: "Rahul Kumar", Age: "28", Gender: "male", Berth: "lower"},
			},
			ContactEmail:  "rahul@example.in",
			ContactPhone:  "9876543210",
			PaymentMethod: "upi",
			Fare:          fare.Compute(1780, 1),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket("s1")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if filename != "ETICKET_4837291056.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceLoaderError(t *testing.T) {
	svc := DocsService{Loader: func(id string) (ticketData, error) {
		return ticketData{}, domain.ConflictError{Resource: "booking", Msg: "not confirmed"}
	}}

	_, _, err := svc.GenerateETicket("s1")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rs 0"},
		{580, "Rs 580"},
		{1904, "Rs 1,904"},
		{123456, "Rs 1,23,456"},
		{12643104, "Rs 1,26,43,104"},
	}
	for _, tc := range cases {
		if got := formatRupees(tc.in); got != tc.want {
			t.Errorf("formatRupees(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("a/b c"); strings.ContainsAny(got, "/ ") {
		t.Fatalf("unsafe characters left in %q", got)
	}
	if got := safeFilenamePart("   "); got != "NA" {
		t.Fatalf("blank input should map to NA, got %q", got)
	}
}
