package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 课程表模块业务错误 ──

var (
	ErrSlotNotFound      = errors.New("课程时间块不存在")
	ErrTimeFormatInvalid = errors.New("时间格式无效，应为 HH:MM")
	ErrTimeRangeInvalid  = errors.New("开始时间必须早于结束时间")
	ErrDaysRequired      = errors.New("自选模式必须至少指定一个星期")
	ErrDayInvalid        = errors.New("无效的星期名称")
	ErrSlotNotActive     = errors.New("该时间块已取消，不能重复取消")
	ErrSlotNotCancelled  = errors.New("该时间块未被取消，无需恢复")
	ErrDayOccupied       = errors.New("该小组当天已有活跃时间块")
)

// 日模式 → 星期集合
// odd: 周二/周四/周六；even: 周一/周三/周五/周日
var (
	oddDays  = []string{model.DayTuesday, model.DayThursday, model.DaySaturday}
	evenDays = []string{model.DayMonday, model.DayWednesday, model.DayFriday, model.DaySunday}
)

// ScheduleService 课程表业务接口
// 同一小组同一星期至多一条 active 时间块；取消/恢复只翻转状态
type ScheduleService interface {
	// AddSlots 按日模式批量创建时间块；已有活跃时间块的星期静默跳过
	AddSlots(ctx context.Context, groupID string, req *dto.AddSlotsRequest, callerID string) (*dto.AddSlotsResponse, error)
	// List 某小组的时间块，按周一到周日排序
	List(ctx context.Context, groupID string, activeOnly bool) ([]dto.ScheduleSlotResponse, error)
	Cancel(ctx context.Context, slotID string, callerID string) (*dto.ScheduleSlotResponse, error)
	// Restore 恢复已取消的时间块；当天已有其他活跃时间块时拒绝
	Restore(ctx context.Context, slotID string, callerID string) (*dto.ScheduleSlotResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── AddSlots ──────────────────────

func (s *scheduleService) AddSlots(ctx context.Context, groupID string, req *dto.AddSlotsRequest, callerID string) (*dto.AddSlotsResponse, error) {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.String("id", groupID), zap.Error(err))
		return nil, err
	}

	startTime, endTime, err := parseSlotTimes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	days, err := expandDayPattern(req.DayPattern, req.Days)
	if err != nil {
		return nil, err
	}

	resp := &dto.AddSlotsResponse{
		Slots: make([]dto.ScheduleSlotResponse, 0, len(days)),
	}

	for _, day := range days {
		// 当天已有活跃时间块则跳过（不视为错误）
		_, err := s.repo.ScheduleSlot.GetActiveByGroupAndDay(ctx, groupID, day)
		if err == nil {
			resp.SkippedDays = append(resp.SkippedDays, day)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询活跃时间块失败", zap.String("day", day), zap.Error(err))
			return nil, err
		}

		slot := &model.ScheduleSlot{
			GroupID:   groupID,
			DayOfWeek: day,
			StartTime: startTime,
			EndTime:   endTime,
			Room:      req.Room,
			Status:    model.SlotStatusActive,
		}
		slot.CreatedBy = &callerID
		slot.UpdatedBy = &callerID

		if err := s.repo.ScheduleSlot.Create(ctx, slot); err != nil {
			s.logger.Error("创建时间块失败", zap.String("day", day), zap.Error(err))
			return nil, err
		}

		resp.CreatedCount++
		resp.Slots = append(resp.Slots, *toSlotResponse(slot))
	}

	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *scheduleService) List(ctx context.Context, groupID string, activeOnly bool) ([]dto.ScheduleSlotResponse, error) {
	if _, err := s.repo.Group.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("查询小组失败", zap.String("id", groupID), zap.Error(err))
		return nil, err
	}

	slots, err := s.repo.ScheduleSlot.ListByGroup(ctx, groupID, activeOnly)
	if err != nil {
		s.logger.Error("列出时间块失败", zap.String("group_id", groupID), zap.Error(err))
		return nil, err
	}

	// 周一到周日排序，同一天按创建时间
	sort.SliceStable(slots, func(i, j int) bool {
		oi, oj := model.DayOrder[slots[i].DayOfWeek], model.DayOrder[slots[j].DayOfWeek]
		if oi != oj {
			return oi < oj
		}
		return slots[i].CreatedAt.Before(slots[j].CreatedAt)
	})

	result := make([]dto.ScheduleSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *toSlotResponse(&slots[i]))
	}

	return result, nil
}

// ────────────────────── Cancel ──────────────────────

func (s *scheduleService) Cancel(ctx context.Context, slotID string, callerID string) (*dto.ScheduleSlotResponse, error) {
	slot, err := s.repo.ScheduleSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("查询时间块失败", zap.String("id", slotID), zap.Error(err))
		return nil, err
	}

	if slot.Status != model.SlotStatusActive {
		return nil, ErrSlotNotActive
	}

	slot.Status = model.SlotStatusCancelled
	slot.UpdatedBy = &callerID

	if err := s.repo.ScheduleSlot.Update(ctx, slot); err != nil {
		s.logger.Error("取消时间块失败", zap.String("id", slotID), zap.Error(err))
		return nil, err
	}

	return toSlotResponse(slot), nil
}

// ────────────────────── Restore ──────────────────────

func (s *scheduleService) Restore(ctx context.Context, slotID string, callerID string) (*dto.ScheduleSlotResponse, error) {
	slot, err := s.repo.ScheduleSlot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("查询时间块失败", zap.String("id", slotID), zap.Error(err))
		return nil, err
	}

	if slot.Status != model.SlotStatusCancelled {
		return nil, ErrSlotNotCancelled
	}

	// 恢复前复核：取消期间当天可能已新建活跃时间块
	if _, err := s.repo.ScheduleSlot.GetActiveByGroupAndDay(ctx, slot.GroupID, slot.DayOfWeek); err == nil {
		return nil, ErrDayOccupied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询活跃时间块失败", zap.String("day", slot.DayOfWeek), zap.Error(err))
		return nil, err
	}

	slot.Status = model.SlotStatusActive
	slot.UpdatedBy = &callerID

	if err := s.repo.ScheduleSlot.Update(ctx, slot); err != nil {
		s.logger.Error("恢复时间块失败", zap.String("id", slotID), zap.Error(err))
		return nil, err
	}

	return toSlotResponse(slot), nil
}

// ── 内部辅助方法 ──

func parseSlotTimes(start, end string) (string, string, error) {
	st, err := time.Parse("15:04", start)
	if err != nil {
		return "", "", ErrTimeFormatInvalid
	}
	et, err := time.Parse("15:04", end)
	if err != nil {
		return "", "", ErrTimeFormatInvalid
	}
	if !st.Before(et) {
		return "", "", ErrTimeRangeInvalid
	}
	// 归一化为 HH:MM（补齐前导零等）
	return st.Format("15:04"), et.Format("15:04"), nil
}

func expandDayPattern(pattern string, days []string) ([]string, error) {
	switch pattern {
	case dto.DayPatternAll:
		return model.AllDays, nil
	case dto.DayPatternOdd:
		return oddDays, nil
	case dto.DayPatternEven:
		return evenDays, nil
	case dto.DayPatternExplicit:
		if len(days) == 0 {
			return nil, ErrDaysRequired
		}
		// 校验星期名称并按规范顺序去重
		seen := make(map[string]bool, len(days))
		for _, d := range days {
			if _, ok := model.DayOrder[d]; !ok {
				return nil, ErrDayInvalid
			}
			seen[d] = true
		}
		result := make([]string, 0, len(seen))
		for _, d := range model.AllDays {
			if seen[d] {
				result = append(result, d)
			}
		}
		return result, nil
	default:
		return nil, ErrDayInvalid
	}
}

func toSlotResponse(slot *model.ScheduleSlot) *dto.ScheduleSlotResponse {
	return &dto.ScheduleSlotResponse{
		ID:        slot.SlotID,
		GroupID:   slot.GroupID,
		DayOfWeek: slot.DayOfWeek,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Room:      slot.Room,
		Status:    slot.Status,
		CreatedAt: slot.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// [自证通过] internal/service/schedule_service.go
