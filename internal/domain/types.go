package domain

// Enumerations shared across the booking core. They are stored as plain
// strings so the JSON wire shape matches what the original flow exposed.

type TravelClass string

const (
	ClassSleeper    TravelClass = "SL"
	ClassAC3Tier    TravelClass = "3A"
	ClassAC2Tier    TravelClass = "2A"
	ClassACFirst    TravelClass = "1A"
	ClassChairCar   TravelClass = "CC"
	ClassSecondSeat TravelClass = "2S"
)

func (c TravelClass) Valid() bool {
	switch c {
	case ClassSleeper, ClassAC3Tier, ClassAC2Tier, ClassACFirst, ClassChairCar, ClassSecondSeat:
		return true
	}
	return false
}

type Quota string

const (
	QuotaGeneral       Quota = "general"
	QuotaLadies        Quota = "ladies"
	QuotaTatkal        Quota = "tatkal"
	QuotaPremiumTatkal Quota = "premium-tatkal"
	QuotaLowerBerth    Quota = "lower-berth"
	QuotaDivyaang      Quota = "divyaang"
)

func (q Quota) Valid() bool {
	switch q {
	case QuotaGeneral, QuotaLadies, QuotaTatkal, QuotaPremiumTatkal, QuotaLowerBerth, QuotaDivyaang:
		return true
	}
	return false
}

// Availability of a fare class on a particular train.
type Availability string

const (
	Available   Availability = "available"
	Waitlist    Availability = "waitlist"
	RAC         Availability = "rac"
	Unavailable Availability = "unavailable"
)

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type BerthPreference string

const (
	BerthNoPreference BerthPreference = "no-preference"
	BerthLower        BerthPreference = "lower"
	BerthMiddle       BerthPreference = "middle"
	BerthUpper        BerthPreference = "upper"
	BerthSideLower    BerthPreference = "side-lower"
	BerthSideUpper    BerthPreference = "side-upper"
)

type IDProofType string

const (
	IDProofNone     IDProofType = ""
	IDProofAadhaar  IDProofType = "aadhaar"
	IDProofPAN      IDProofType = "pan"
	IDProofPassport IDProofType = "passport"
)

type PaymentMethod string

const (
	PaymentNone       PaymentMethod = ""
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentWallet     PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentNetBanking, PaymentWallet:
		return true
	}
	return false
}

// BookingStatus is an observational flag on the booking; it never gates
// transitions by itself.
type BookingStatus string

const (
	StatusIdle      BookingStatus = "idle"
	StatusSearching BookingStatus = "searching"
	StatusBooking   BookingStatus = "booking"
	StatusPayment   BookingStatus = "payment"
	StatusConfirmed BookingStatus = "confirmed"
	StatusFailed    BookingStatus = "failed"
)
