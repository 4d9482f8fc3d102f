package repository

import (
	"context"

	"gorm.io/gorm"

	"edu-center/backend/internal/model"
)

// ScheduleSlotRepository 课程时间块数据访问接口
type ScheduleSlotRepository interface {
	Create(ctx context.Context, slot *model.ScheduleSlot) error
	GetByID(ctx context.Context, id string) (*model.ScheduleSlot, error)
	// GetActiveByGroupAndDay 查找某小组某星期的活跃时间块（去重检查用）
	GetActiveByGroupAndDay(ctx context.Context, groupID, day string) (*model.ScheduleSlot, error)
	ListByGroup(ctx context.Context, groupID string, activeOnly bool) ([]model.ScheduleSlot, error)
	Update(ctx context.Context, slot *model.ScheduleSlot) error
	CountActive(ctx context.Context) (int64, error)
}

type scheduleSlotRepo struct {
	db *gorm.DB
}

// NewScheduleSlotRepo 创建 ScheduleSlotRepository 实例
func NewScheduleSlotRepo(db *gorm.DB) ScheduleSlotRepository {
	return &scheduleSlotRepo{db: db}
}

func (r *scheduleSlotRepo) Create(ctx context.Context, slot *model.ScheduleSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *scheduleSlotRepo) GetByID(ctx context.Context, id string) (*model.ScheduleSlot, error) {
	var slot model.ScheduleSlot
	err := r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *scheduleSlotRepo) GetActiveByGroupAndDay(ctx context.Context, groupID, day string) (*model.ScheduleSlot, error) {
	var slot model.ScheduleSlot
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND day_of_week = ? AND status = ?",
			groupID, day, model.SlotStatusActive).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// ListByGroup 返回小组的时间块，按创建顺序；星期排序（Mon=1…Sun=7）在
// Service 层完成，数据库不感知星期名的业务顺序
func (r *scheduleSlotRepo) ListByGroup(ctx context.Context, groupID string, activeOnly bool) ([]model.ScheduleSlot, error) {
	var slots []model.ScheduleSlot
	db := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	if activeOnly {
		db = db.Where("status = ?", model.SlotStatusActive)
	}
	err := db.Order("created_at ASC").Find(&slots).Error
	return slots, err
}

func (r *scheduleSlotRepo) Update(ctx context.Context, slot *model.ScheduleSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *scheduleSlotRepo) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ScheduleSlot{}).
		Where("status = ?", model.SlotStatusActive).
		Count(&total).Error
	return total, err
}
