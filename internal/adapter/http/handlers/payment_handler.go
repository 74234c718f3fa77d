package handlers

import (
	"errors"
	"log"
	"net/http"
	request "salao_xpto/internal/adapter/http/dto/request"
	response "salao_xpto/internal/adapter/http/dto/response"
	"salao_xpto/internal/usecase"
	"salao_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for appointment Pix charges.

type PaymentHandler struct {
	lifecycle usecase.IPaymentLifecycleUseCase
	sweeper   usecase.IExpirySweeperUseCase
}

func NewPaymentHandler(lifecycle usecase.IPaymentLifecycleUseCase, sweeper usecase.IExpirySweeperUseCase) *PaymentHandler {
	return &PaymentHandler{lifecycle: lifecycle, sweeper: sweeper}
}

// CreatePayment opens a Pix charge for the appointment in path.
//
// When the workspace does not require upfront payment the endpoint still
// answers 200, with payment_required=false and no payment body.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] create start appointment_id=%s", appointmentID)

	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create invalid payload appointment_id=%s err=%v", appointmentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.lifecycle.CreateForAppointment(c.Request.Context(), usecase.CreatePaymentInput{
		AppointmentID:     appointmentID,
		WorkspaceID:       payload.WorkspaceID,
		ServiceTotalCents: payload.ServiceTotalCents,
		Notes:             payload.Notes,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotRequired) {
			log.Printf("[payment][handler] create not-required appointment_id=%s", appointmentID)
			c.JSON(http.StatusOK, response.PaymentNotRequired())
			return
		}
		log.Printf("[payment][handler] create failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success appointment_id=%s payment_id=%s amount_cents=%d", appointmentID, created.ID, created.AmountCents)

	c.JSON(http.StatusOK, response.FromCreatedPayment(created))
}

// GetPayment returns the charge attached to an appointment.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] get start appointment_id=%s", appointmentID)

	payment, err := h.lifecycle.GetByAppointmentID(c.Request.Context(), appointmentID)
	if err != nil {
		log.Printf("[payment][handler] get failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ConfirmPayment marks a pending charge as paid after the attendant checked
// the transfer on their banking app.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] confirm start appointment_id=%s", appointmentID)

	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	confirmed, err := h.lifecycle.Confirm(c.Request.Context(), appointmentID, payload.ActorID)
	if err != nil {
		log.Printf("[payment][handler] confirm failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success appointment_id=%s payment_id=%s", appointmentID, confirmed.ID)

	c.JSON(http.StatusOK, response.FromPayment(confirmed))
}

// CancelPayment cancels a pending charge and releases the appointment slot.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	appointmentID := c.Param("appointment_id")
	log.Printf("[payment][handler] cancel start appointment_id=%s", appointmentID)

	var payload request.CancelPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cancelled, err := h.lifecycle.Cancel(c.Request.Context(), appointmentID, payload.ActorID, payload.Reason)
	if err != nil {
		log.Printf("[payment][handler] cancel failed appointment_id=%s err=%v", appointmentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] cancel success appointment_id=%s payment_id=%s", appointmentID, cancelled.ID)

	c.JSON(http.StatusOK, response.FromPayment(cancelled))
}

// SweepExpired cancels every pending charge whose deadline has passed.
// The scheduled sweeper calls the same use case; this endpoint exists so
// operators can force a pass.
func (h *PaymentHandler) SweepExpired(c *gin.Context) {
	workspaceID := c.Query("workspace_id")
	log.Printf("[payment][handler] sweep start workspace_id=%q", workspaceID)

	report, err := h.sweeper.SweepExpired(c.Request.Context(), workspaceID)
	if err != nil {
		log.Printf("[payment][handler] sweep failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] sweep done selected=%d cancelled=%d skipped=%d failed=%d", report.Selected, report.Cancelled, report.Skipped, report.Failed)

	c.JSON(http.StatusOK, response.FromSweepReport(report))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID), errors.Is(err, usecase.ErrInvalidWorkspaceID), errors.Is(err, usecase.ErrInvalidServiceTotal), errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidChargeConfiguration):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE_CONFIGURATION", "Workspace payment settings cannot produce a valid charge", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Payment was modified by another request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
