package routes

import (
	"mecanica_workorders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices   = "/services"
	PathWorkOrders = "/work-orders"
	PathForms      = "/forms"
)

func addServiceRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceCatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", serviceHandler.List)
		services.POST("", serviceHandler.Create)
		services.GET("/:id", serviceHandler.GetByID)
	}
}

func addWorkOrderRoutes(rg *gin.RouterGroup, workOrderHandler *handlers.WorkOrderHandler, paymentHandler *handlers.WorkOrderPaymentHandler) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", workOrderHandler.List)
		workOrders.GET("/:id", workOrderHandler.GetByID)
		workOrders.POST("/:id/payments", paymentHandler.Charge)
		workOrders.GET("/:id/payments", paymentHandler.GetLatest)
	}
}

// Forms are addressed by intent; the id segment is absent for new orders.
func addFormRoutes(rg *gin.RouterGroup, formHandler *handlers.WorkOrderFormHandler) {
	forms := rg.Group(PathForms)
	{
		forms.GET("/:intent", formHandler.OpenForm)
		forms.GET("/:intent/:id", formHandler.OpenForm)
		forms.POST("/:intent", formHandler.SubmitForm)
		forms.POST("/:intent/:id", formHandler.SubmitForm)
		forms.DELETE("/:intent/:id", formHandler.DeleteFromForm)
	}
}
