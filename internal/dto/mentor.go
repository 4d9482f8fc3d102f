package dto

// ── 导师模块 DTO ──

// UpdateMentorProfileRequest 导师自助编辑档案请求
type UpdateMentorProfileRequest struct {
	FirstName       *string `json:"first_name"       binding:"omitempty,min=1,max=100"`
	LastName        *string `json:"last_name"        binding:"omitempty,min=1,max=100"`
	Phone           *string `json:"phone"            binding:"omitempty,max=20"`
	Specialty       *string `json:"specialty"        binding:"omitempty,max=100"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,min=0,max=80"`
	Biography       *string `json:"biography"`
}

// MentorResponse 导师档案响应
type MentorResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone,omitempty"`
	Specialty       string `json:"specialty,omitempty"`
	ExperienceYears *int   `json:"experience_years,omitempty"`
	Biography       string `json:"biography,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// [自证通过] internal/dto/mentor.go
