// Package flow sequences the booking steps for one session. The
// controller is the only writer to its store; every gate, guard and
// error route of the purchase flow lives here.
package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/fare"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/payment"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/store"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/trains"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/validate"
)

// Screen is a named position in the flow, including the two recoverable
// error states.
type Screen string

const (
	ScreenSearch         Screen = "search"
	ScreenResults        Screen = "results"
	ScreenPassenger      Screen = "passenger"
	ScreenReview         Screen = "review"
	ScreenPayment        Screen = "payment"
	ScreenConfirmation   Screen = "confirmation"
	ScreenPaymentFailed  Screen = "payment-failed"
	ScreenSessionTimeout Screen = "session-timeout"
)

const (
	stepSearch       = 0
	stepResults      = 1
	stepPassenger    = 2
	stepReview       = 3
	stepPayment      = 4
	stepConfirmation = 5
)

// MaxPassengers per booking.
const MaxPassengers = 6

const (
	msgPaymentFailed  = "Your payment could not be processed. No amount has been deducted from your account. Please try again or use a different payment method."
	msgSessionTimeout = "Your booking session has timed out for security reasons. Please start a new search to continue booking."
)

// ReviewErrors aggregates the validator output blocking passenger ->
// review, keyed by passenger id plus the contact record.
type ReviewErrors struct {
	Passengers map[string]validate.FieldErrors `json:"passengers,omitempty"`
	Contact    validate.FieldErrors            `json:"contact,omitempty"`
}

func (e ReviewErrors) Error() string {
	return fmt.Sprintf("%d passenger record(s) and %d contact field(s) invalid", len(e.Passengers), len(e.Contact))
}

// Options tune a controller. Zero values fall back to defaults.
type Options struct {
	// PaymentTimeout bounds one gateway submission; expiry routes the
	// flow to the session-timeout state.
	PaymentTimeout time.Duration
	// Now supplies the current time; tests pin it.
	Now func() time.Time
	// RequestID tags log lines for the owning session.
	RequestID string
}

// Controller drives one booking session. Methods serialize on an
// internal mutex so the single-writer model holds even behind an HTTP
// boundary; the only operation that suspends progress is a payment
// submission, and only for the payment step.
type Controller struct {
	mu       sync.Mutex
	store    *store.Store
	provider trains.ResultProvider
	gateway  payment.Gateway

	screen    Screen
	results   []models.TrainOffering
	paying    bool
	payTimeout time.Duration
	now       func() time.Time
	requestID string
}

func New(provider trains.ResultProvider, gateway payment.Gateway, opts Options) *Controller {
	if opts.PaymentTimeout <= 0 {
		opts.PaymentTimeout = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		store:     store.New(),
		provider:  provider,
		gateway:   gateway,
		screen:    ScreenSearch,
		payTimeout: opts.PaymentTimeout,
		now:       opts.Now,
		requestID: opts.RequestID,
	}
}

// State returns a copy of the booking state.
func (c *Controller) State() models.BookingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.State()
}

// CurrentScreen returns the flow position.
func (c *Controller) CurrentScreen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// Results returns the offerings from the last successful search.
func (c *Controller) Results() []models.TrainOffering {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.TrainOffering, len(c.results))
	for i, t := range c.results {
		t.Classes = append([]models.FareClass(nil), t.Classes...)
		out[i] = t
	}
	return out
}

// UpdateSearch merges edits into the search criteria. Editing is always
// allowed; the gate runs at Search.
func (c *Controller) UpdateSearch(patch store.SetSearch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if patch.TravelClass != nil && !patch.TravelClass.Valid() {
		return domain.ValidationError{Field: "travelClass", Msg: "unknown travel class"}
	}
	if patch.Quota != nil && !patch.Quota.Valid() {
		return domain.ValidationError{Field: "quota", Msg: "unknown quota"}
	}
	c.store.Apply(patch)
	return nil
}

// Search gates search -> results. Field errors block the transition and
// leave the step unchanged; a zero-result list is a valid outcome the
// presentation renders as "no trains".
func (c *Controller) Search(ctx context.Context) ([]models.TrainOffering, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenSearch && c.screen != ScreenResults {
		return nil, domain.ConflictError{Resource: "flow", Msg: "search is only available from the search step"}
	}

	st := c.store.State()
	if errs := validate.Search(st.FromStation, st.ToStation, st.Date, c.now()); !errs.Ok() {
		return nil, errs
	}

	c.store.Apply(store.SetBookingStatus{Status: domain.StatusSearching})
	found, err := c.provider.Search(ctx, trains.Query{
		FromStation: st.FromStation,
		ToStation:   st.ToStation,
		Date:        st.Date,
		TravelClass: st.TravelClass,
		Quota:       st.Quota,
	})
	if err != nil {
		c.store.Apply(store.SetBookingStatus{Status: domain.StatusIdle})
		utils.LogEvent(c.requestID, "flow", "search", "provider error: "+err.Error())
		return nil, domain.InternalError{Msg: "train search failed", Err: err}
	}

	c.results = found
	c.store.Apply(store.SetBookingStatus{Status: domain.StatusIdle})
	c.store.Apply(store.SetError{})
	c.store.Apply(store.SetStep{Step: stepResults})
	c.screen = ScreenResults
	utils.LogEvent(c.requestID, "flow", "search", fmt.Sprintf("results=%d", len(found)))
	return c.resultsLocked(), nil
}

func (c *Controller) resultsLocked() []models.TrainOffering {
	out := make([]models.TrainOffering, len(c.results))
	for i, t := range c.results {
		t.Classes = append([]models.FareClass(nil), t.Classes...)
		out[i] = t
	}
	return out
}

// SelectClass gates results -> passenger. Unavailable classes are
// refused here and never reach the store; train and class are written
// together. First entry seeds one blank passenger.
func (c *Controller) SelectClass(trainID, classCode string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenResults {
		return domain.ConflictError{Resource: "flow", Msg: "no result set to select from"}
	}

	var train *models.TrainOffering
	for i := range c.results {
		if c.results[i].ID == trainID {
			train = &c.results[i]
			break
		}
	}
	if train == nil {
		return domain.NotFoundError{Resource: "train"}
	}
	class, ok := train.Class(classCode)
	if !ok {
		return domain.NotFoundError{Resource: "class"}
	}
	if !class.Selectable() {
		return domain.ConflictError{Resource: "class", Msg: "this class is not available on the selected train"}
	}

	c.store.Apply(store.SetTrain{Train: *train})
	c.store.Apply(store.SetClass{Class: class})
	c.store.Apply(store.SetStep{Step: stepPassenger})
	if len(c.store.State().Passengers) == 0 {
		c.store.Apply(store.AddPassenger{Passenger: models.BlankPassenger()})
	}
	c.screen = ScreenPassenger
	utils.LogEvent(c.requestID, "flow", "select_class", fmt.Sprintf("train=%s class=%s", trainID, classCode))
	return nil
}

// AddPassenger appends a blank record, capped at MaxPassengers.
func (c *Controller) AddPassenger() (models.Passenger, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.store.State()
	if len(st.Passengers) >= MaxPassengers {
		return models.Passenger{}, domain.ValidationError{Field: "passengers", Msg: fmt.Sprintf("maximum %d passengers per booking", MaxPassengers)}
	}
	st = c.store.Apply(store.AddPassenger{Passenger: models.BlankPassenger()})
	return st.Passengers[len(st.Passengers)-1], nil
}

// UpdatePassenger patches the record with the given id.
func (c *Controller) UpdatePassenger(id string, patch models.PassengerPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasPassenger(id) {
		return domain.NotFoundError{Resource: "passenger"}
	}
	c.store.Apply(store.UpdatePassenger{ID: id, Patch: patch})
	return nil
}

// RemovePassenger deletes by id; the last remaining passenger cannot be
// removed.
func (c *Controller) RemovePassenger(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasPassenger(id) {
		return domain.NotFoundError{Resource: "passenger"}
	}
	if len(c.store.State().Passengers) <= 1 {
		return domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	c.store.Apply(store.RemovePassenger{ID: id})
	return nil
}

func (c *Controller) hasPassenger(id string) bool {
	for _, p := range c.store.State().Passengers {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SetContact replaces the contact record. Validation runs at Review.
func (c *Controller) SetContact(email, phone string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Apply(store.SetContact{Email: email, Phone: phone})
	return nil
}

// Review gates passenger -> review on every passenger and the contact
// record validating cleanly.
func (c *Controller) Review() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenPassenger {
		return domain.ConflictError{Resource: "flow", Msg: "review follows the passenger step"}
	}

	st := c.store.State()
	revErrs := ReviewErrors{Passengers: map[string]validate.FieldErrors{}}
	for _, p := range st.Passengers {
		if errs := validate.Passenger(p); !errs.Ok() {
			revErrs.Passengers[p.ID] = errs
		}
	}
	if errs := validate.Contact(st.ContactEmail, st.ContactPhone); !errs.Ok() {
		revErrs.Contact = errs
	}
	if len(revErrs.Passengers) > 0 || len(revErrs.Contact) > 0 {
		return revErrs
	}

	c.store.Apply(store.SetError{})
	c.store.Apply(store.SetStep{Step: stepReview})
	c.screen = ScreenReview
	return nil
}

// ProceedToPayment moves review -> payment; review is informational so
// the edge is unconditional.
func (c *Controller) ProceedToPayment() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != ScreenReview {
		return domain.ConflictError{Resource: "flow", Msg: "payment follows the review step"}
	}
	c.store.Apply(store.SetStep{Step: stepPayment})
	c.screen = ScreenPayment
	return nil
}

// FareBreakdown prices the current selection. The identical computation
// backs the review, payment and confirmation presentations.
func (c *Controller) FareBreakdown() (fare.Breakdown, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.store.State()
	if st.SelectedClass == nil {
		return fare.Breakdown{}, domain.NotFoundError{Resource: "fare selection"}
	}
	return fare.Compute(st.SelectedClass.Fare, len(st.Passengers)), nil
}

// Pay submits the payment. A second call while one is outstanding is
// rejected without touching the store. The submission runs under a
// timeout; expiry routes to session-timeout, a declined payment to
// payment-failed, and success to confirmation with the reference code
// recorded as the PNR. The returned state reflects the outcome.
func (c *Controller) Pay(ctx context.Context, method domain.PaymentMethod) (models.BookingState, error) {
	c.mu.Lock()
	if c.paying {
		st := c.store.State()
		c.mu.Unlock()
		return st, domain.ConflictError{Resource: "payment", Msg: "a payment is already being processed"}
	}
	if c.screen != ScreenPayment {
		st := c.store.State()
		c.mu.Unlock()
		return st, domain.ConflictError{Resource: "flow", Msg: "not at the payment step"}
	}
	if !method.Valid() {
		st := c.store.State()
		c.mu.Unlock()
		return st, domain.ValidationError{Field: "paymentMethod", Msg: "Please select a payment method"}
	}
	st := c.store.State()
	if st.SelectedClass == nil || len(st.Passengers) == 0 {
		c.mu.Unlock()
		return st, domain.InternalError{Msg: "booking has no priced selection"}
	}

	amount := fare.Compute(st.SelectedClass.Fare, len(st.Passengers)).Total
	c.store.Apply(store.SetPaymentMethod{Method: method})
	c.store.Apply(store.SetBookingStatus{Status: domain.StatusPayment})
	c.store.Apply(store.SetError{})
	c.paying = true
	c.mu.Unlock()

	subCtx, cancel := context.WithTimeout(ctx, c.payTimeout)
	defer cancel()
	receipt, err := c.gateway.Submit(subCtx, string(method), amount)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.paying = false

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		c.store.Apply(store.SetBookingStatus{Status: domain.StatusFailed})
		c.store.Apply(store.SetError{Message: msgSessionTimeout})
		c.screen = ScreenSessionTimeout
		utils.LogEvent(c.requestID, "flow", "pay", "gateway timed out")

	case err != nil:
		// A malformed or failing collaborator surfaces as a generic,
		// recoverable failure rather than propagating.
		c.store.Apply(store.SetBookingStatus{Status: domain.StatusFailed})
		c.store.Apply(store.SetError{Message: msgPaymentFailed})
		c.screen = ScreenPaymentFailed
		utils.LogEvent(c.requestID, "flow", "pay", "gateway error: "+err.Error())

	case receipt.OK:
		c.store.Apply(store.SetPNR{PNR: receipt.ReferenceCode})
		c.store.Apply(store.SetBookingStatus{Status: domain.StatusConfirmed})
		c.store.Apply(store.SetStep{Step: stepConfirmation})
		c.screen = ScreenConfirmation
		utils.LogEvent(c.requestID, "flow", "pay", "confirmed pnr="+receipt.ReferenceCode)

	default:
		c.store.Apply(store.SetBookingStatus{Status: domain.StatusFailed})
		c.store.Apply(store.SetError{Message: msgPaymentFailed})
		c.screen = ScreenPaymentFailed
		utils.LogEvent(c.requestID, "flow", "pay", "declined")
	}

	return c.store.State(), nil
}

// Back rewinds one step. Backward navigation is never gated on
// validation, but it is blocked while a payment is in flight.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paying {
		return domain.ConflictError{Resource: "payment", Msg: "cannot navigate away while a payment is being processed"}
	}

	switch c.screen {
	case ScreenResults:
		c.screen = ScreenSearch
		c.store.Apply(store.SetStep{Step: stepSearch})
	case ScreenPassenger:
		c.screen = ScreenResults
		c.store.Apply(store.SetStep{Step: stepResults})
	case ScreenReview:
		c.screen = ScreenPassenger
		c.store.Apply(store.SetStep{Step: stepPassenger})
	case ScreenPayment:
		c.screen = ScreenReview
		c.store.Apply(store.SetStep{Step: stepReview})
	default:
		return domain.ConflictError{Resource: "flow", Msg: "cannot go back from this step"}
	}
	return nil
}

// Retry recovers from an error state. payment-failed re-enters the
// payment step with all booking data intact; session-timeout restarts
// the whole flow, since resuming mid-flow after expiry is unsafe.
func (c *Controller) Retry() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.screen {
	case ScreenPaymentFailed:
		c.store.Apply(store.SetError{})
		c.store.Apply(store.SetStep{Step: stepPayment})
		c.screen = ScreenPayment
		return nil
	case ScreenSessionTimeout:
		c.resetLocked()
		return nil
	default:
		return domain.ConflictError{Resource: "flow", Msg: "nothing to retry"}
	}
}

// Reset starts a new booking from the documented initial state.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paying {
		return domain.ConflictError{Resource: "payment", Msg: "cannot reset while a payment is being processed"}
	}
	c.resetLocked()
	return nil
}

func (c *Controller) resetLocked() {
	c.store.Apply(store.Reset{})
	c.results = nil
	c.screen = ScreenSearch
}
