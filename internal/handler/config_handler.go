package handler

import (
	"net/http"

	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	svc   *service.ConfigService
	audit *service.AuditService
}

func NewConfigHandler(svc *service.ConfigService, audit *service.AuditService) *ConfigHandler {
	return &ConfigHandler{svc: svc, audit: audit}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.svc.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": cfg})
}

func (h *ConfigHandler) Update(c *gin.Context) {
	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	cfg, err := h.svc.Update(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "config.update", "production_config", cfg.ID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": cfg})
}
