package routes

import (
	"salao_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments   = "/payments"
	PathWorkspaces = "/workspaces"
	PathPublic     = "/public"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, settingsHandler *handlers.WorkspaceSettingsHandler) {
	payments := rg.Group(PathPayments)
	{
		// Sweep first so the literal path is not shadowed by :appointment_id.
		payments.POST("/sweep-expired", paymentHandler.SweepExpired)

		payments.POST("/:appointment_id", paymentHandler.CreatePayment)
		payments.GET("/:appointment_id", paymentHandler.GetPayment)
		payments.PATCH("/:appointment_id/confirm", paymentHandler.ConfirmPayment)
		payments.PATCH("/:appointment_id/cancel", paymentHandler.CancelPayment)
	}

	workspaces := rg.Group(PathWorkspaces)
	{
		workspaces.PUT("/:workspace_id/payment-settings", settingsHandler.PutSettings)
		workspaces.GET("/:workspace_id/payment-settings", settingsHandler.GetSettings)
	}

	public := rg.Group(PathPublic)
	{
		// Masked view for the client-facing booking page.
		public.GET("/workspaces/:workspace_id/payment-info", settingsHandler.GetPublicPaymentInfo)
	}
}
