package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hazelshop/admin-backend/internal/app/service/status"
	"github.com/hazelshop/admin-backend/pkg/response"
	"github.com/hazelshop/admin-backend/pkg/types"
)

type StatusItem struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type ListStatusesResponse struct {
	Domain types.StatusDomain `json:"domain"`
	Items  []StatusItem       `json:"items"`
}

// @Summary      List status vocabulary
// @Description  Returns the status codes of a domain with display labels, in canonical order.
// @Tags         Admin
// @Produce      json
// @Param        domain path string true "Status domain (order or payment)"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/statuses/{domain} [get]
func ApiListStatuses(registry *status.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		domain := types.StatusDomain(c.Param("domain"))
		codes := registry.AllCodes(domain)
		if codes == nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "unknown status domain"))
			return
		}
		items := lo.Map(codes, func(code string, _ int) StatusItem {
			return StatusItem{Code: code, Label: registry.Label(domain, code)}
		})
		c.JSON(http.StatusOK, response.OKT(ListStatusesResponse{Domain: domain, Items: items}))
	}
}
