package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hazelshop/admin-backend/internal/app/service/statistics"
	"github.com/hazelshop/admin-backend/pkg/response"
	"github.com/hazelshop/admin-backend/pkg/types"
)

type StatisticsRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
}

// @Summary      Order finance summary
// @Description  Order counts and amounts grouped by the coarse finance status view.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.StatisticsRequest true "Optional filters"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/statistics/finance_summary [post]
func ApiOrderFinanceSummary(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatisticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.OrderFinanceSummary(c.Request.Context(), req.Filters)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Daily order counts
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.StatisticsRequest true "Optional filters"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/statistics/daily_orders [post]
func ApiDailyOrderCount(svc *statistics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatisticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.DailyOrderCount(c.Request.Context(), req.Filters)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}
