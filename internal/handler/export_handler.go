package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Components 零部件库存表下载
func (h *ExportHandler) Components(c *gin.Context) {
	f, err := h.svc.ComponentsWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	writeWorkbook(c, f, fmt.Sprintf("components-%s.xlsx", time.Now().Format("20060102")))
}

// MRP 订单采购计划表下载
func (h *ExportHandler) MRP(c *gin.Context) {
	f, err := h.svc.MRPWorkbook(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": err.Error()})
		return
	}
	writeWorkbook(c, f, fmt.Sprintf("mrp-%s.xlsx", time.Now().Format("20060102")))
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
