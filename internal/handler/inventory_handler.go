package handler

import (
	"net/http"
	"strconv"

	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler 库存调整与流水查询
type InventoryHandler struct {
	svc   *service.ComponentService
	audit *service.AuditService
}

func NewInventoryHandler(svc *service.ComponentService, audit *service.AuditService) *InventoryHandler {
	return &InventoryHandler{svc: svc, audit: audit}
}

// Adjust 人工库存调整，正数入库负数出库
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req service.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	component, record, err := h.svc.AdjustInventory(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "inventory.adjust", "component", req.ComponentID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{
		"component":   component,
		"transaction": record,
	}})
}

// Transactions 零部件库存流水，倒序
func (h *InventoryHandler) Transactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := h.svc.ListTransactions(c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": records})
}
