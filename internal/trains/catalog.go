// Package trains provides the result provider the flow controller
// searches against. The static catalog stands in for a real search /
// inventory service; the availability snapshot it returns is treated as
// opaque by the rest of the core.
package trains

import (
	"context"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

// Query carries the search criteria. Class and quota are passed through
// to the provider but the static catalog does not partition by them.
type Query struct {
	FromStation string
	ToStation   string
	Date        string
	TravelClass domain.TravelClass
	Quota       domain.Quota
}

// ResultProvider returns the train offerings for a query. An empty list
// is a valid result, not an error.
type ResultProvider interface {
	Search(ctx context.Context, q Query) ([]models.TrainOffering, error)
}

// Option is a code/name pair for the reference tables.
type Option struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// StaticCatalog serves a fixed in-memory timetable.
type StaticCatalog struct {
	trains   []models.TrainOffering
	stations []Option
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{trains: defaultTrains(), stations: popularStations()}
}

// Search matches trains by route. Station inputs may be raw codes or the
// "Name (CODE)" strings the search form produces.
func (c *StaticCatalog) Search(ctx context.Context, q Query) ([]models.TrainOffering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	from := utils.StationCode(q.FromStation)
	to := utils.StationCode(q.ToStation)

	out := []models.TrainOffering{}
	for _, t := range c.trains {
		if t.DepartureStation == from && t.ArrivalStation == to {
			out = append(out, cloneTrain(t))
		}
	}
	return out, nil
}

// Stations lists the popular stations offered as search suggestions.
func (c *StaticCatalog) Stations() []Option {
	return append([]Option(nil), c.stations...)
}

func ClassOptions() []Option {
	return []Option{
		{Code: "SL", Name: "Sleeper"},
		{Code: "3A", Name: "AC 3 Tier"},
		{Code: "2A", Name: "AC 2 Tier"},
		{Code: "1A", Name: "AC First Class"},
		{Code: "CC", Name: "AC Chair Car"},
		{Code: "2S", Name: "Second Sitting"},
	}
}

func QuotaOptions() []Option {
	return []Option{
		{Code: "general", Name: "General"},
		{Code: "ladies", Name: "Ladies"},
		{Code: "tatkal", Name: "Tatkal"},
		{Code: "premium-tatkal", Name: "Premium Tatkal"},
		{Code: "lower-berth", Name: "Lower Berth (Senior Citizen)"},
		{Code: "divyaang", Name: "Person with Disability"},
	}
}

func cloneTrain(t models.TrainOffering) models.TrainOffering {
	t.Classes = append([]models.FareClass(nil), t.Classes...)
	return t
}

func popularStations() []Option {
	return []Option{
		{Code: "NDLS", Name: "New Delhi"},
		{Code: "MAS", Name: "Chennai Central"},
		{Code: "CSTM", Name: "Mumbai CSMT"},
		{Code: "HWH", Name: "Howrah Junction"},
		{Code: "BLR", Name: "Bangalore City"},
		{Code: "PNBE", Name: "Patna Junction"},
		{Code: "LKO", Name: "Lucknow"},
		{Code: "JP", Name: "Jaipur"},
		{Code: "ADI", Name: "Ahmedabad"},
		{Code: "SC", Name: "Secunderabad"},
		{Code: "BPL", Name: "Bhopal"},
		{Code: "CNB", Name: "Kanpur Central"},
		{Code: "AGC", Name: "Agra Cantt"},
		{Code: "GHY", Name: "Guwahati"},
		{Code: "TVC", Name: "Thiruvananthapuram"},
	}
}

func defaultTrains() []models.TrainOffering {
	return []models.TrainOffering{
		{
			ID: "1", Name: "Rajdhani Express", Number: "12301",
			DepartureTime: "16:55", ArrivalTime: "10:25", Duration: "17h 30m",
			DepartureStation: "NDLS", ArrivalStation: "HWH",
			Classes: []models.FareClass{
				{Code: "1A", Name: "AC First Class", Fare: 4215, Availability: domain.Available, AvailableSeats: 12},
				{Code: "2A", Name: "AC 2 Tier", Fare: 2470, Availability: domain.Available, AvailableSeats: 34},
				{Code: "3A", Name: "AC 3 Tier", Fare: 1780, Availability: domain.Waitlist, WaitlistNumber: 8},
			},
		},
		{
			ID: "2", Name: "Duronto Express", Number: "12273",
			DepartureTime: "20:05", ArrivalTime: "10:50", Duration: "14h 45m",
			DepartureStation: "NDLS", ArrivalStation: "HWH",
			Classes: []models.FareClass{
				{Code: "2A", Name: "AC 2 Tier", Fare: 2595, Availability: domain.Available, AvailableSeats: 6},
				{Code: "3A", Name: "AC 3 Tier", Fare: 1850, Availability: domain.Available, AvailableSeats: 22},
				{Code: "SL", Name: "Sleeper", Fare: 715, Availability: domain.RAC},
			},
		},
		{
			ID: "3", Name: "Poorva Express", Number: "12303",
			DepartureTime: "16:30", ArrivalTime: "14:10", Duration: "21h 40m",
			DepartureStation: "NDLS", ArrivalStation: "HWH",
			Classes: []models.FareClass{
				{Code: "2A", Name: "AC 2 Tier", Fare: 2190, Availability: domain.Available, AvailableSeats: 48},
				{Code: "3A", Name: "AC 3 Tier", Fare: 1545, Availability: domain.Available, AvailableSeats: 118},
				{Code: "SL", Name: "Sleeper", Fare: 580, Availability: domain.Available, AvailableSeats: 204},
			},
		},
		{
			ID: "4", Name: "Sealdah Rajdhani", Number: "12313",
			DepartureTime: "16:25", ArrivalTime: "10:05", Duration: "17h 40m",
			DepartureStation: "NDLS", ArrivalStation: "HWH",
			Classes: []models.FareClass{
				{Code: "1A", Name: "AC First Class", Fare: 4375, Availability: domain.Unavailable},
				{Code: "2A", Name: "AC 2 Tier", Fare: 2545, Availability: domain.Waitlist, WaitlistNumber: 24},
				{Code: "3A", Name: "AC 3 Tier", Fare: 1825, Availability: domain.Waitlist, WaitlistNumber: 42},
			},
		},
		{
			ID: "5", Name: "Kalka Mail", Number: "12311",
			DepartureTime: "07:40", ArrivalTime: "10:30", Duration: "26h 50m",
			DepartureStation: "NDLS", ArrivalStation: "HWH",
			Classes: []models.FareClass{
				{Code: "2A", Name: "AC 2 Tier", Fare: 1980, Availability: domain.Available, AvailableSeats: 15},
				{Code: "3A", Name: "AC 3 Tier", Fare: 1390, Availability: domain.Available, AvailableSeats: 67},
				{Code: "SL", Name: "Sleeper", Fare: 510, Availability: domain.Available, AvailableSeats: 312},
			},
		},
	}
}
