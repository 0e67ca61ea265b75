package handlers

import (
	"github.com/gin-gonic/gin"

	notifsvc "github.com/hazelshop/admin-backend/internal/app/service/notification"
	ordersvc "github.com/hazelshop/admin-backend/internal/app/service/order"
	"github.com/hazelshop/admin-backend/internal/app/service/statistics"
	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/pkg/response"
)

// RespOK is a generic OK envelope for documentation purposes.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

func RegisterAdminRoutes(r gin.IRouter, registry *status.Registry, orders *ordersvc.Service, tracker *notifsvc.Tracker, stats *statistics.Service) {
	r.GET("/statuses/:domain", ApiListStatuses(registry))

	r.POST("/orders", ApiCreateOrder(orders))
	r.GET("/orders/:id", ApiGetOrder(orders))
	r.POST("/orders/:id/status", ApiChangeOrderStatus(orders))
	r.GET("/orders/:id/payment", ApiGetOrderPayment(orders))
	r.POST("/payments/:id/status", ApiChangePaymentStatus(orders))

	r.POST("/notifications", ApiCreateNotification(tracker))
	r.POST("/notifications/list", ApiListNotifications(tracker))
	r.GET("/notifications/:id", ApiGetNotification(tracker))
	r.POST("/notifications/:id/delete", ApiDeleteNotification(tracker))

	r.POST("/statistics/finance_summary", ApiOrderFinanceSummary(stats))
	r.POST("/statistics/daily_orders", ApiDailyOrderCount(stats))
}
