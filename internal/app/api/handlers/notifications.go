package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	notifsvc "github.com/hazelshop/admin-backend/internal/app/service/notification"
	"github.com/hazelshop/admin-backend/pkg/response"
)

func notificationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "invalid notification id"))
		return 0, false
	}
	return id, true
}

// @Summary      Create notification
// @Description  Creates a notification record; a row without member and seller is a broadcast.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body notification.CreateRequest true "Notification"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/notifications [post]
func ApiCreateNotification(tracker *notifsvc.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req notifsvc.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		record, err := tracker.Create(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, notifsvc.ErrValidation) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(record))
	}
}

// @Summary      List notifications
// @Description  Paginated, filterable listing; soft-deleted rows are excluded.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body notification.ListRequest true "Listing request"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/notifications/list [post]
func ApiListNotifications(tracker *notifsvc.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req notifsvc.ListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := tracker.List(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Get notification
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/notifications/{id} [get]
func ApiGetNotification(tracker *notifsvc.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := notificationID(c)
		if !ok {
			return
		}
		record, err := tracker.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, notifsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(record))
	}
}

// @Summary      Soft-delete notification
// @Description  Marks the record deleted; it stays in storage but leaves every pending query. Idempotent.
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/notifications/{id}/delete [post]
func ApiDeleteNotification(tracker *notifsvc.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := notificationID(c)
		if !ok {
			return
		}
		if err := tracker.SoftDelete(c.Request.Context(), id); err != nil {
			if errors.Is(err, notifsvc.ErrNotFound) {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}
