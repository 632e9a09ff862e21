package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/domain/models"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/flow"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/http/middleware"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/services"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/session"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/store"
	"github.com/Madhavikareddy/IRCTC-Redesign/internal/utils"
)

// SessionHandler exposes one booking session per id. Every route below
// /api/sessions/:id resolves the session first; unknown ids are a 404
// whether they never existed or were idle-evicted.
type SessionHandler struct {
	Sessions *session.Manager
}

func (h SessionHandler) resolve(c *gin.Context) (*flow.Controller, bool) {
	ctrl, ok := h.Sessions.Get(c.Param("id"))
	if !ok {
		RespondDomainError(c, domain.NotFoundError{Resource: "session"})
		return nil, false
	}
	return ctrl, true
}

func (h SessionHandler) view(c *gin.Context, ctrl *flow.Controller) gin.H {
	out := gin.H{
		"sessionId": c.Param("id"),
		"screen":    ctrl.CurrentScreen(),
		"state":     ctrl.State(),
	}
	if results := ctrl.Results(); len(results) > 0 {
		out["results"] = results
	}
	return out
}

// Create opens a new booking session.
func (h SessionHandler) Create(c *gin.Context) {
	id, ctrl := h.Sessions.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": id,
		"screen":    ctrl.CurrentScreen(),
		"state":     ctrl.State(),
	})
}

// Get returns the session snapshot.
func (h SessionHandler) Get(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// Close removes the session.
func (h SessionHandler) Close(c *gin.Context) {
	h.Sessions.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type searchRequest struct {
	From        *string             `json:"from"`
	To          *string             `json:"to"`
	Date        *string             `json:"date"`
	TravelClass *domain.TravelClass `json:"travelClass"`
	Quota       *domain.Quota       `json:"quota"`
}

// Search merges the criteria and runs the search gate.
func (h SessionHandler) Search(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := ctrl.UpdateSearch(store.SetSearch{
		FromStation: req.From,
		ToStation:   req.To,
		Date:        req.Date,
		TravelClass: req.TravelClass,
		Quota:       req.Quota,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := ctrl.Search(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

type selectRequest struct {
	TrainID   string `json:"trainId"`
	ClassCode string `json:"classCode"`
}

// Select picks a train and class from the current results.
func (h SessionHandler) Select(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	var req selectRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := ctrl.SelectClass(req.TrainID, req.ClassCode); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// AddPassenger appends a blank passenger record.
func (h SessionHandler) AddPassenger(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	p, err := ctrl.AddPassenger()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"passenger": p, "state": ctrl.State()})
}

// UpdatePassenger patches one passenger record.
func (h SessionHandler) UpdatePassenger(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	var patch models.PassengerPatch
	if !BindJSONOrError(c, &patch) {
		return
	}
	if err := ctrl.UpdatePassenger(c.Param("pid"), patch); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": ctrl.State()})
}

// RemovePassenger deletes one passenger record.
func (h SessionHandler) RemovePassenger(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.RemovePassenger(c.Param("pid")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": ctrl.State()})
}

type contactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SetContact replaces the contact record.
func (h SessionHandler) SetContact(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	var req contactRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := ctrl.SetContact(req.Email, req.Phone); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": ctrl.State()})
}

// Review runs the passenger and contact validators and advances to the
// review step when clean.
func (h SessionHandler) Review(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.Review(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// ProceedToPayment advances review -> payment.
func (h SessionHandler) ProceedToPayment(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.ProceedToPayment(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

type payRequest struct {
	Method domain.PaymentMethod `json:"method"`
}

// Pay submits the payment and returns the resolved state, success or
// not. The flow-level outcome (confirmed, payment-failed,
// session-timeout) is part of the snapshot, not an HTTP error.
func (h SessionHandler) Pay(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	var req payRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if _, err := ctrl.Pay(c.Request.Context(), req.Method); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// Back rewinds one step.
func (h SessionHandler) Back(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.Back(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// Retry recovers from payment-failed or session-timeout.
func (h SessionHandler) Retry(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.Retry(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// Reset starts the session over from a clean state.
func (h SessionHandler) Reset(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := ctrl.Reset(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, ctrl))
}

// Fare prices the current selection.
func (h SessionHandler) Fare(c *gin.Context) {
	ctrl, ok := h.resolve(c)
	if !ok {
		return
	}
	breakdown, err := ctrl.FareBreakdown()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fare": breakdown,
		"display": gin.H{
			"baseFare":       utils.FormatINR(breakdown.BaseFare),
			"convenienceFee": utils.FormatINR(breakdown.ConvenienceFee),
			"gst":            utils.FormatINR(breakdown.GST),
			"total":          utils.FormatINR(breakdown.Total),
		},
	})
}

// Ticket streams the e-ticket PDF for a confirmed booking.
func (h SessionHandler) Ticket(c *gin.Context) {
	svc := services.DocsService{
		Sessions:  h.Sessions,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
