package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/utils"
)

// DashboardStats godoc
// @Summary      Dashboard figures
// @Description  Totals per collection, pending approvals and completed donations grouped by method
// @Tags         admin
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]interface{}
// @Failure      403 {object} map[string]interface{}
// @Failure      500 {object} map[string]interface{}
// @Security     BearerAuth
// @Router       /admin/stats [get]
func DashboardStats(adminSvc *services.AdminService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c, cfg)
		defer cancel()

		stats, err := adminSvc.Dashboard(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, gin.H{"stats": stats})
	}
}
