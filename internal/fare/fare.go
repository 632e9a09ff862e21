// Package fare computes the charge for a booking. The same function runs
// at review, payment and confirmation so the displayed total never
// changes between steps for the same selection.
package fare

import "math"

// ConvenienceFee is charged once per booking, independent of passenger
// count. Whole rupees.
const ConvenienceFee int64 = 35

// GSTRate is applied to the base fare.
const GSTRate = 0.05

// Breakdown is the itemized charge for one booking.
type Breakdown struct {
	BaseFare       int64 `json:"baseFare"`
	ConvenienceFee int64 `json:"convenienceFee"`
	GST            int64 `json:"gst"`
	Total          int64 `json:"total"`
}

// Compute prices a booking from the per-seat fare and passenger count.
// perSeatFare must be non-negative and passengers positive. GST rounds
// half away from zero; every caller goes through here so the rounding
// stays consistent.
func Compute(perSeatFare int64, passengers int) Breakdown {
	base := perSeatFare * int64(passengers)
	gst := roundRupees(float64(base) * GSTRate)
	return Breakdown{
		BaseFare:       base,
		ConvenienceFee: ConvenienceFee,
		GST:            gst,
		Total:          base + ConvenienceFee + gst,
	}
}

func roundRupees(x float64) int64 {
	return int64(math.Round(x))
}
