package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/service"
	"edu-center/backend/pkg/response"
)

// MentorHandler 导师模块 HTTP 处理器
type MentorHandler struct {
	mentorSvc service.MentorService
}

// NewMentorHandler 创建 MentorHandler
func NewMentorHandler(mentorSvc service.MentorService) *MentorHandler {
	return &MentorHandler{mentorSvc: mentorSvc}
}

// GetMyProfile 导师本人档案
// GET /api/v1/mentors/me
func (h *MentorHandler) GetMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.mentorSvc.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateMyProfile 导师自助编辑档案
// PUT /api/v1/mentors/me
func (h *MentorHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMentorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.mentorSvc.UpdateMyProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// MyGroups 导师名下小组
// GET /api/v1/mentors/me/groups
func (h *MentorHandler) MyGroups(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.mentorSvc.MyGroups(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// MyGroupMembers 导师查看名下小组成员
// GET /api/v1/mentors/me/groups/:id/members
func (h *MentorHandler) MyGroupMembers(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.mentorSvc.MyGroupMembers(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Dashboard 导师仪表盘
// GET /api/v1/mentors/me/dashboard
func (h *MentorHandler) Dashboard(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.mentorSvc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// List 导师列表（管理员）
// GET /api/v1/mentors
func (h *MentorHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	mentors, total, err := h.mentorSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, mentors, total, req.GetPage(), req.GetPageSize())
}

// GetByID 导师详情（管理员）
// GET /api/v1/mentors/:id
func (h *MentorHandler) GetByID(c *gin.Context) {
	result, err := h.mentorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除导师及其账号（管理员）
// DELETE /api/v1/mentors/:id
func (h *MentorHandler) Delete(c *gin.Context) {
	if err := h.mentorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *MentorHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMentorNotFound):
		response.NotFound(c, 22001, "导师不存在")
	case errors.Is(err, service.ErrMentorProfileAbsent):
		response.NotFound(c, 22002, "当前用户没有导师档案")
	case errors.Is(err, service.ErrGroupNotOwned):
		response.Forbidden(c, 22003, "该小组不属于当前导师")
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 31001, "小组不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/mentor_handler.go
