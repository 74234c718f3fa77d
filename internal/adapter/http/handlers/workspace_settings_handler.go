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

// WorkspaceSettingsHandler handles HTTP requests for a salon's payment setup.

type WorkspaceSettingsHandler struct {
	usecase usecase.IWorkspaceSettingsUseCase
}

func NewWorkspaceSettingsHandler(uc usecase.IWorkspaceSettingsUseCase) *WorkspaceSettingsHandler {
	return &WorkspaceSettingsHandler{usecase: uc}
}

// PutSettings replaces the workspace's pricing policy and Pix identity.
func (h *WorkspaceSettingsHandler) PutSettings(c *gin.Context) {
	workspaceID := c.Param("workspace_id")
	log.Printf("[settings][handler] put start workspace_id=%s", workspaceID)

	var payload request.PaymentSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[settings][handler] put invalid payload workspace_id=%s err=%v", workspaceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Put(c.Request.Context(), workspaceID, payload.ToPolicy())
	if err != nil {
		log.Printf("[settings][handler] put failed workspace_id=%s err=%v", workspaceID, err)
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settings][handler] put success workspace_id=%s charge_mode=%s", workspaceID, saved.Policy.ChargeMode)

	c.JSON(http.StatusOK, response.FromWorkspaceSettings(saved))
}

// GetSettings returns the full policy, raw Pix key included. This route is
// for the salon owner's own dashboard, not for clients.
func (h *WorkspaceSettingsHandler) GetSettings(c *gin.Context) {
	workspaceID := c.Param("workspace_id")
	log.Printf("[settings][handler] get start workspace_id=%s", workspaceID)

	settings, err := h.usecase.Get(c.Request.Context(), workspaceID)
	if err != nil {
		log.Printf("[settings][handler] get failed workspace_id=%s err=%v", workspaceID, err)
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkspaceSettings(settings))
}

// GetPublicPaymentInfo returns the masked view shown on the booking page.
func (h *WorkspaceSettingsHandler) GetPublicPaymentInfo(c *gin.Context) {
	workspaceID := c.Param("workspace_id")
	log.Printf("[settings][handler] public-info start workspace_id=%s", workspaceID)

	info, err := h.usecase.PublicPaymentInfo(c.Request.Context(), workspaceID)
	if err != nil {
		log.Printf("[settings][handler] public-info failed workspace_id=%s err=%v", workspaceID, err)
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicPaymentInfo(info))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkspaceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompletePixSetup):
		return pkg.NewDomainErrorSimple("INCOMPLETE_PIX_SETUP", "Pix key, holder name and city are required when payment is enabled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettingsNotFound):
		return pkg.NewDomainErrorSimple("SETTINGS_NOT_FOUND", "Payment settings not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
