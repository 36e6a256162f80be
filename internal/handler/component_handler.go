package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ComponentHandler struct {
	svc   *service.ComponentService
	audit *service.AuditService
}

func NewComponentHandler(svc *service.ComponentService, audit *service.AuditService) *ComponentHandler {
	return &ComponentHandler{svc: svc, audit: audit}
}

func (h *ComponentHandler) Create(c *gin.Context) {
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	component, err := h.svc.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "component.create", "component", component.ID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": component})
}

func (h *ComponentHandler) Get(c *gin.Context) {
	component, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "零部件不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": component})
}

func (h *ComponentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.ComponentListParams{
		Keyword:  c.Query("keyword"),
		LowStock: c.Query("low_stock") == "true",
		Page:     page,
		Size:     size,
	}

	components, total, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": components, "total": total, "page": page, "size": size}})
}

func (h *ComponentHandler) Update(c *gin.Context) {
	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	component, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "零部件不存在"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "component.update", "component", component.ID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": component})
}

func (h *ComponentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "component.delete", "component", id,
		nil, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
