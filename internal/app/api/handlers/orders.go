package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ordersvc "github.com/hazelshop/admin-backend/internal/app/service/order"
	"github.com/hazelshop/admin-backend/pkg/response"
)

// @Summary      Create order
// @Description  Opens a Pending order together with its Unpaid payment row.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body order.CreateOrderRequest true "Order creation request"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/orders [post]
func ApiCreateOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ordersvc.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		order, err := svc.CreateOrder(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, ordersvc.ErrInvalidOrder) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(order))
	}
}

// @Summary      Get order
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/orders/{id} [get]
func ApiGetOrder(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, ordersvc.ErrOrderNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(order))
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// @Summary      Change order status
// @Description  Moves an order along its lifecycle; illegal transitions are rejected.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body handlers.ChangeStatusRequest true "Target status"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/orders/{id}/status [post]
func ApiChangeOrderStatus(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		order, err := svc.ChangeOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, ordersvc.ErrInvalidTransition) || errors.Is(err, ordersvc.ErrOrderNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(order))
	}
}

// @Summary      Get order payment
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/orders/{id}/payment [get]
func ApiGetOrderPayment(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		payment, err := svc.GetPaymentByOrderID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, ordersvc.ErrPaymentNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(payment))
	}
}

// @Summary      Change payment status
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID"
// @Param        request body handlers.ChangeStatusRequest true "Target status"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/payments/{id}/status [post]
func ApiChangePaymentStatus(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		payment, err := svc.ChangePaymentStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, ordersvc.ErrInvalidTransition) || errors.Is(err, ordersvc.ErrPaymentNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(payment))
	}
}
