package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"edu-center/backend/internal/service"
	"edu-center/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRoster 导出小组花名册
// GET /api/v1/groups/:id/export/roster
func (h *ExportHandler) ExportRoster(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRoster(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.sendFile(c, buf.Bytes(), filename)
}

// ExportSchedule 导出小组周课程表
// GET /api/v1/groups/:id/export/schedule
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.sendFile(c, buf.Bytes(), filename)
}

func (h *ExportHandler) sendFile(c *gin.Context, data []byte, filename string) {
	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 31001, "小组不存在")
	case errors.Is(err, service.ErrExportNoMembers):
		response.NotFound(c, 42001, "该小组暂无成员")
	case errors.Is(err, service.ErrExportNoSlots):
		response.NotFound(c, 42002, "该小组暂无活跃时间块")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
