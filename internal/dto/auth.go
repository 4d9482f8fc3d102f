package dto

// ── 认证模块请求 ──

// RegisterRequest 注册请求
// 管理员账号不开放注册，只能由启动期 seed 创建
type RegisterRequest struct {
	Username  string `json:"username"   binding:"required,min=3,max=80,alphanum"`
	Email     string `json:"email"      binding:"required,email"`
	Password  string `json:"password"   binding:"required,min=6,max=72"`
	Role      string `json:"role"       binding:"required,oneof=student mentor"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=100"`
	Phone     string `json:"phone"      binding:"omitempty,max=20"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 刷新 Token 请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// [自证通过] internal/dto/auth.go
