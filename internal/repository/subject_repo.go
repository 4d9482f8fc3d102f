package repository

import (
	"context"

	"gorm.io/gorm"

	"edu-center/backend/internal/model"
)

// SubjectRepository 科目数据访问接口
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id string) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	Update(ctx context.Context, subject *model.Subject) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo 创建 SubjectRepository 实例
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Update(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

func (r *subjectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		Delete(&model.Subject{}).Error
}

func (r *subjectRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Subject{}).Count(&total).Error
	return total, err
}
