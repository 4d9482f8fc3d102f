package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 入组申请模块业务错误 ──

var (
	ErrApplicationNotFound = errors.New("申请不存在")
	ErrAlreadyEnrolled     = errors.New("您已加入小组，不能重复申请")
	ErrApplicationLimit    = errors.New("对该小组的申请次数已达上限")
	ErrGroupFull           = errors.New("小组已满员")
	ErrGroupNotActive      = errors.New("该小组当前不接受报名")
	ErrApplicationDecided  = errors.New("该申请已处理，不能重复操作")
)

// rejectNoteDefault 拒绝申请时的默认备注
const rejectNoteDefault = "申请未通过"

// rejectNoteGroupFull 审批时发现满员自动拒绝的备注
const rejectNoteGroupFull = "小组已满员"

// rejectNoteEnrolledElsewhere 学员等待期间已加入其他小组时自动拒绝的备注
const rejectNoteEnrolledElsewhere = "学员已加入其他小组"

// approveNoteDefault 批准申请时的默认备注
const approveNoteDefault = "申请已通过"

// EnrollmentService 入组申请业务接口
// 记录只翻转状态，永不删除；pending → approved / rejected 均为终态
type EnrollmentService interface {
	// Submit 学员提交入组申请（按 userID 定位学员档案）
	Submit(ctx context.Context, userID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	// Approve 管理员批准：满员时自动转为拒绝并返回 ErrGroupFull
	Approve(ctx context.Context, id string, callerID string) (*dto.ApplicationResponse, error)
	// Reject 管理员拒绝；备注空白时使用默认备注
	Reject(ctx context.Context, id string, req *dto.RejectApplicationRequest, callerID string) (*dto.ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	List(ctx context.Context, req *dto.ApplicationListRequest) ([]dto.ApplicationResponse, int64, error)
	// ListMine 学员查看本人申请历史
	ListMine(ctx context.Context, userID string) ([]dto.ApplicationResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *enrollmentService) Submit(ctx context.Context, userID string, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileAbsent
		}
		s.logger.Error("查询学员档案失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	// 已在组内的学员不能再申请任何小组
	if student.GroupID != nil {
		return nil, ErrAlreadyEnrolled
	}

	group, err := s.repo.Group.GetByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.String("id", req.GroupID), zap.Error(err))
		return nil, err
	}
	if group.Status != model.GroupStatusActive {
		return nil, ErrGroupNotActive
	}

	// 同一小组累计申请次数上限（包含待审与已处理的历史申请）
	count, err := s.repo.Application.CountByStudentAndGroup(ctx, student.StudentID, group.GroupID)
	if err != nil {
		s.logger.Error("统计申请次数失败", zap.Error(err))
		return nil, err
	}
	if count >= model.MaxApplicationsPerGroup {
		return nil, ErrApplicationLimit
	}

	// 提交时的容量预检（审批时还会复核）
	enrolled, err := s.repo.Student.CountByGroup(ctx, group.GroupID)
	if err != nil {
		s.logger.Error("统计在组人数失败", zap.Error(err))
		return nil, err
	}
	if enrolled >= int64(group.Capacity) {
		return nil, ErrGroupFull
	}

	app := &model.Application{
		StudentID: student.StudentID,
		GroupID:   group.GroupID,
		Status:    model.ApplicationStatusPending,
		AppliedAt: time.Now(),
	}
	app.CreatedBy = &userID
	app.UpdatedBy = &userID

	if err := s.repo.Application.Create(ctx, app); err != nil {
		s.logger.Error("创建申请失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Application.GetByID(ctx, app.ApplicationID)
	if err != nil {
		return nil, err
	}

	return toApplicationResponse(created), nil
}

// ────────────────────── Approve ──────────────────────

// Approve 批准流程在单个事务内完成：
// 复核容量 → 写入学员 group_id → 翻转申请状态
// 事务内复核可防止并发审批超出容量
func (s *enrollmentService) Approve(ctx context.Context, id string, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("查询申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if app.Status != model.ApplicationStatusPending {
		return nil, ErrApplicationDecided
	}

	group, err := s.repo.Group.GetByID(ctx, app.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.String("id", app.GroupID), zap.Error(err))
		return nil, err
	}

	// 学员在等待期间可能已加入其他小组
	student, err := s.repo.Student.GetByID(ctx, app.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学员失败", zap.String("id", app.StudentID), zap.Error(err))
		return nil, err
	}

	// 审批不把申请留在 pending：学员已加入其他小组时自动转为拒绝
	if student.GroupID != nil {
		now := time.Now()
		app.Status = model.ApplicationStatusRejected
		app.DecidedAt = &now
		app.Note = rejectNoteEnrolledElsewhere
		app.UpdatedBy = &callerID

		if err := s.repo.Application.Update(ctx, app); err != nil {
			s.logger.Error("自动拒绝申请失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		return nil, ErrAlreadyEnrolled
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
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

	now := time.Now()

	// 事务内复核容量；满员时自动转为拒绝
	enrolled, err := txRepo.Student.CountByGroup(ctx, group.GroupID)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("统计在组人数失败", zap.Error(err))
		return nil, err
	}
	if enrolled >= int64(group.Capacity) {
		app.Status = model.ApplicationStatusRejected
		app.DecidedAt = &now
		app.Note = rejectNoteGroupFull
		app.UpdatedBy = &callerID

		if err := txRepo.Application.Update(ctx, app); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("自动拒绝申请失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		if tx != nil {
			if err := tx.Commit().Error; err != nil {
				s.logger.Error("提交事务失败", zap.Error(err))
				return nil, err
			}
		}
		return nil, ErrGroupFull
	}

	if err := txRepo.Student.AssignGroup(ctx, app.StudentID, &group.GroupID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("写入学员小组失败", zap.String("student_id", app.StudentID), zap.Error(err))
		return nil, err
	}

	app.Status = model.ApplicationStatusApproved
	app.DecidedAt = &now
	app.Note = approveNoteDefault
	app.UpdatedBy = &callerID

	if err := txRepo.Application.Update(ctx, app); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("批准申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	return toApplicationResponse(app), nil
}

// ────────────────────── Reject ──────────────────────

func (s *enrollmentService) Reject(ctx context.Context, id string, req *dto.RejectApplicationRequest, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("查询申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if app.Status != model.ApplicationStatusPending {
		return nil, ErrApplicationDecided
	}

	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = rejectNoteDefault
	}

	now := time.Now()
	app.Status = model.ApplicationStatusRejected
	app.DecidedAt = &now
	app.Note = note
	app.UpdatedBy = &callerID

	if err := s.repo.Application.Update(ctx, app); err != nil {
		s.logger.Error("拒绝申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(app), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *enrollmentService) GetByID(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("查询申请失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toApplicationResponse(app), nil
}

// ────────────────────── List ──────────────────────

func (s *enrollmentService) List(ctx context.Context, req *dto.ApplicationListRequest) ([]dto.ApplicationResponse, int64, error) {
	apps, total, err := s.repo.Application.List(ctx, req.Status, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出申请失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *toApplicationResponse(&apps[i]))
	}

	return result, total, nil
}

// ────────────────────── ListMine ──────────────────────

func (s *enrollmentService) ListMine(ctx context.Context, userID string) ([]dto.ApplicationResponse, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileAbsent
		}
		s.logger.Error("查询学员档案失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	apps, err := s.repo.Application.ListByStudent(ctx, student.StudentID)
	if err != nil {
		s.logger.Error("查询学员申请失败", zap.String("student_id", student.StudentID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *toApplicationResponse(&apps[i]))
	}

	return result, nil
}

// ── 内部辅助方法 ──

func toApplicationResponse(app *model.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:        app.ApplicationID,
		Status:    app.Status,
		AppliedAt: app.AppliedAt.UTC().Format(time.RFC3339),
		Note:      app.Note,
	}

	if app.DecidedAt != nil {
		d := app.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &d
	}
	if app.Student != nil {
		resp.Student = &dto.StudentBrief{
			ID:        app.Student.StudentID,
			FirstName: app.Student.FirstName,
			LastName:  app.Student.LastName,
		}
	}
	if app.Group != nil {
		resp.Group = &dto.GroupBrief{
			ID:     app.Group.GroupID,
			Name:   app.Group.Name,
			Status: app.Group.Status,
		}
	}

	return resp
}

// [自证通过] internal/service/enrollment_service.go
