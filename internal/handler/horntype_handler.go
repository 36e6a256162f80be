package handler

import (
	"net/http"
	"strconv"

	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
)

type HornTypeHandler struct {
	svc   *service.HornTypeService
	audit *service.AuditService
}

func NewHornTypeHandler(svc *service.HornTypeService, audit *service.AuditService) *HornTypeHandler {
	return &HornTypeHandler{svc: svc, audit: audit}
}

func (h *HornTypeHandler) Create(c *gin.Context) {
	var req service.CreateHornTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	ht, err := h.svc.Create(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "horn_type.create", "horn_type", ht.ID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ht})
}

func (h *HornTypeHandler) Get(c *gin.Context) {
	ht, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "型号不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ht})
}

func (h *HornTypeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	types, total, err := h.svc.List(repository.HornTypeListParams{
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"items": types, "total": total, "page": page, "size": size}})
}

func (h *HornTypeHandler) Update(c *gin.Context) {
	var req service.UpdateHornTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	ht, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "horn_type.update", "horn_type", ht.ID,
		req, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ht})
}

func (h *HornTypeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "horn_type.delete", "horn_type", id,
		nil, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetBOM 整体替换型号的BOM清单
func (h *HornTypeHandler) SetBOM(c *gin.Context) {
	var req struct {
		Entries []service.BOMEntryRequest `json:"entries" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	ht, err := h.svc.SetBOM(c.Param("id"), req.Entries)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10004, "message": err.Error()})
		return
	}

	h.audit.Record(c.GetString("user_id"), "horn_type.set_bom", "horn_type", ht.ID,
		req.Entries, c.ClientIP(), c.Request.UserAgent())
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ht})
}
