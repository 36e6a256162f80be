package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/planning"
	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MRPHandler struct {
	svc   *service.MRPService
	audit *service.AuditService
}

func NewMRPHandler(svc *service.MRPService, audit *service.AuditService) *MRPHandler {
	return &MRPHandler{svc: svc, audit: audit}
}

// Generate 为订单生成采购计划，重复调用整体替换旧计划
func (h *MRPHandler) Generate(c *gin.Context) {
	orderID := c.Param("id")
	summary, plans, err := h.svc.GeneratePlan(orderID, time.Now().UTC())
	if err != nil {
		var capErr *planning.CapacityError
		var schedErr *planning.ScheduleError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "订单不存在"})
		case errors.Is(err, service.ErrConfigMissing):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10005, "message": "生产配置未设置，请先配置产能参数"})
		case errors.Is(err, planning.ErrEmptyDemand):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10006, "message": "订单型号没有BOM，无法展开需求"})
		case errors.As(err, &schedErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    10007,
				"message": err.Error(),
				"data":    gin.H{"working_days": schedErr.WorkingDays},
			})
		case errors.As(err, &capErr):
			// 带上改期所需的数字，前端可直接提示
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    10008,
				"message": err.Error(),
				"data": gin.H{
					"required_daily": capErr.RequiredDaily,
					"capacity":       capErr.Capacity,
					"required_days":  capErr.RequiredDays,
					"available_days": capErr.AvailableDays,
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}

	h.audit.Record(c.GetString("user_id"), "mrp.generate", "order", orderID,
		summary, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{
		"summary": summary,
		"plans":   plans,
	}})
}

// ListByOrder 订单当前的计划集
func (h *MRPHandler) ListByOrder(c *gin.Context) {
	plans, err := h.svc.ListByOrder(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": plans})
}

// UpdateStatus 流转计划状态，只允许向前
func (h *MRPHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	plan, err := h.svc.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		var transErr *service.InvalidTransitionError
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		case errors.As(err, &transErr):
			c.JSON(http.StatusConflict, gin.H{"code": 10009, "message": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "计划不存在"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}

	h.audit.Record(c.GetString("user_id"), "mrp.update_status", "mrp_plan", plan.ID,
		gin.H{"status": req.Status}, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": plan})
}
