package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/handlers"
)

const (
	PathInvoices   = "/invoices"
	PathClients    = "/clients"
	PathSettings   = "/settings"
	PathActivities = "/activities"
	PathPayments   = "/payments"
)

func addInvoicingRoutes(
	rg *gin.RouterGroup,
	invoiceHandler *handlers.InvoiceHandler,
	clientHandler *handlers.ClientHandler,
	settingsHandler *handlers.SettingsHandler,
	activityHandler *handlers.ActivityHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.PATCH("/:id/send", invoiceHandler.MarkInvoiceSent)
		invoices.PATCH("/:id/pay", invoiceHandler.MarkInvoicePaid)
		invoices.PATCH("/:id/overdue", invoiceHandler.MarkInvoiceOverdue)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("/company", settingsHandler.GetCompanySettings)
		settings.PUT("/company", settingsHandler.UpdateCompanySettings)
		settings.GET("/app", settingsHandler.GetAppSettings)
		settings.PUT("/app", settingsHandler.UpdateAppSettings)
	}

	activities := rg.Group(PathActivities)
	{
		activities.GET("", activityHandler.ListActivities)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_id", paymentHandler.CreatePaymentByInvoiceID)
		payments.GET("/:invoice_id", paymentHandler.GetPaymentByInvoiceID)
	}
}
