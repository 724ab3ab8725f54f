package handler

import (
	"net/http"

	"renascer/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Indicators(c *gin.Context) {
	resp, err := h.svc.Indicators(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) MonthlyMovement(c *gin.Context) {
	resp, err := h.svc.MonthlyMovement(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) CollectionsBySupplier(c *gin.Context) {
	resp, err := h.svc.CollectionsBySupplier(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) SalesByProductType(c *gin.Context) {
	resp, err := h.svc.SalesByProductType(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
