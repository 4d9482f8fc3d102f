package dto

// ── 仪表盘模块 DTO ──

// AdminDashboardResponse 管理员仪表盘统计
type AdminDashboardResponse struct {
	StudentCount        int64                 `json:"student_count"`
	MentorCount         int64                 `json:"mentor_count"`
	GroupCount          int64                 `json:"group_count"`
	SubjectCount        int64                 `json:"subject_count"`
	PendingApplications int64                 `json:"pending_applications"`
	ActiveSlots         int64                 `json:"active_slots"`
	RecentApplications  []ApplicationResponse `json:"recent_applications"`
}

// MentorDashboardResponse 导师仪表盘：本人档案 + 名下小组
type MentorDashboardResponse struct {
	Mentor MentorResponse  `json:"mentor"`
	Groups []GroupResponse `json:"groups"`
}

// StudentDashboardResponse 学员仪表盘：本人档案 + 申请历史
type StudentDashboardResponse struct {
	Student      StudentResponse       `json:"student"`
	Applications []ApplicationResponse `json:"applications"`
}

// [自证通过] internal/dto/dashboard.go
