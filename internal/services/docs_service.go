package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/fare"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/session"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

// DocsService renders the e-ticket PDF for a confirmed booking.
type DocsService struct {
	Sessions  *session.Manager
	RequestID string
	Loader    func(sessionID string) (ticketData, error)
}

type ticketPassenger struct {
	Name   string
	Age    string
	Gender string
	Berth  string
}

type ticketData struct {
	PNR           string
	TrainName     string
	TrainNumber   string
	FromStation   string
	ToStation     string
	Date          string
	DepartureTime string
	ArrivalTime   string
	ClassCode     string
	ClassName     string
	Quota         string
	Passengers    []ticketPassenger
	ContactEmail  string
	ContactPhone  string
	PaymentMethod string
	Fare          fare.Breakdown
}

func (s DocsService) GenerateETicket(sessionID string) ([]byte, string, error) {
	data, err := s.loadTicketData(sessionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "pnr="+data.PNR)
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketData(sessionID string) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(sessionID)
	}

	var out ticketData
	ctrl, ok := s.Sessions.Get(sessionID)
	if !ok {
		return out, domain.NotFoundError{Resource: "session"}
	}
	st := ctrl.State()
	if st.BookingStatus != domain.StatusConfirmed || st.PNR == "" {
		return out, domain.ConflictError{Resource: "booking", Msg: "e-ticket is available after the booking is confirmed"}
	}
	if st.SelectedTrain == nil || st.SelectedClass == nil {
		return out, domain.InternalError{Msg: "confirmed booking has no train selection"}
	}

	out.PNR = st.PNR
	out.TrainName = st.SelectedTrain.Name
	out.TrainNumber = st.SelectedTrain.Number
	out.FromStation = st.FromStation
	out.ToStation = st.ToStation
	out.Date = st.Date
	out.DepartureTime = st.SelectedTrain.DepartureTime
	out.ArrivalTime = st.SelectedTrain.ArrivalTime
	out.ClassCode = st.SelectedClass.Code
	out.ClassName = st.SelectedClass.Name
	out.Quota = string(st.Quota)
	out.ContactEmail = st.ContactEmail
	out.ContactPhone = st.ContactPhone
	out.PaymentMethod = string(st.PaymentMethod)
	out.Fare = fare.Compute(st.SelectedClass.Fare, len(st.Passengers))
	for _, p := range st.Passengers {
		out.Passengers = append(out.Passengers, ticketPassenger{
			Name:   p.Name,
			Age:    p.Age,
			Gender: string(p.Gender),
			Berth:  string(p.BerthPreference),
		})
	}
	return out, nil
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ELECTRONIC RESERVATION SLIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", safe(d.PNR, "-")),
		fmt.Sprintf("Train          : %s (%s)", safe(d.TrainName, "-"), safe(d.TrainNumber, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.FromStation, "-"), safe(d.ToStation, "-")),
		fmt.Sprintf("Journey Date   : %s", safe(d.Date, "-")),
		fmt.Sprintf("Dep / Arr      : %s / %s", safe(d.DepartureTime, "-"), safe(d.ArrivalTime, "-")),
		fmt.Sprintf("Class          : %s (%s)", safe(d.ClassName, "-"), safe(d.ClassCode, "-")),
		fmt.Sprintf("Quota          : %s", safe(d.Quota, "-")),
		fmt.Sprintf("Payment        : %s", safe(d.PaymentMethod, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range d.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s  Age %s  %s  Berth: %s",
			i+1, safe(p.Name, "-"), safe(p.Age, "-"), safe(p.Gender, "-"), safe(p.Berth, "-")))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fare:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Base Fare       : "+formatRupees(d.Fare.BaseFare))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Convenience Fee : "+formatRupees(d.Fare.ConvenienceFee))
	pdf.Ln(6)
	pdf.Cell(0, 6, "GST (5%)        : "+formatRupees(d.Fare.GST))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Total Paid      : "+formatRupees(d.Fare.Total))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Contact: %s / %s. Carry an original photo ID of any passenger during the journey. This e-ticket is valid with the PNR shown above.",
		safe(d.ContactEmail, "-"), safe(d.ContactPhone, "-")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.PNR))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

// formatRupees prints an ASCII rupee amount with Indian digit grouping.
// The base fonts shipped with the PDF writer cannot render the rupee
// sign, so the glyph stays out of the document.
func formatRupees(v int64) string {
	if v < 0 {
		return "Rs 0"
	}
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return "Rs " + s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return "Rs " + strings.Join(parts, ",") + "," + tail
}
