package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestGroupService() (GroupService, *mockStudentRepo, *mockSubjectRepo, *mockGroupRepo, *mockApplicationRepo) {
	studentRepo := newMockStudentRepo()
	subjectRepo := newMockSubjectRepo()
	groupRepo := newMockGroupRepo()
	appRepo := newMockApplicationRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		Student:      studentRepo,
		Mentor:       newMockMentorRepo(),
		Subject:      subjectRepo,
		Group:        groupRepo,
		Application:  appRepo,
		ScheduleSlot: newMockScheduleSlotRepo(),
	}
	svc := NewGroupService(repo, zap.NewNop())
	return svc, studentRepo, subjectRepo, groupRepo, appRepo
}

// ── Create 测试 ──

func TestGroupService_Create_DefaultCapacity(t *testing.T) {
	svc, _, subjectRepo, _, _ := setupTestGroupService()
	subjectRepo.subjects["subj-1"] = &model.Subject{SubjectID: "subj-1", Name: "英语"}

	result, err := svc.Create(context.Background(), &dto.CreateGroupRequest{
		Name:      "英语 A1",
		SubjectID: "subj-1",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Capacity != model.DefaultGroupCapacity {
		t.Errorf("期望默认容量=%d，实际=%d", model.DefaultGroupCapacity, result.Capacity)
	}
	if result.Status != model.GroupStatusActive {
		t.Errorf("期望默认状态=active，实际=%s", result.Status)
	}
}

func TestGroupService_Create_SubjectNotFound(t *testing.T) {
	svc, _, _, _, _ := setupTestGroupService()

	_, err := svc.Create(context.Background(), &dto.CreateGroupRequest{
		Name:      "英语 A1",
		SubjectID: "nonexistent",
	}, "admin-1")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("期望 ErrSubjectNotFound，实际=%v", err)
	}
}

func TestGroupService_Create_BadDate(t *testing.T) {
	svc, _, subjectRepo, _, _ := setupTestGroupService()
	subjectRepo.subjects["subj-1"] = &model.Subject{SubjectID: "subj-1", Name: "英语"}

	bad := "2026/09/01"
	_, err := svc.Create(context.Background(), &dto.CreateGroupRequest{
		Name:      "英语 A1",
		SubjectID: "subj-1",
		StartDate: &bad,
	}, "admin-1")
	if !errors.Is(err, ErrGroupDateInvalid) {
		t.Errorf("期望 ErrGroupDateInvalid，实际=%v", err)
	}
}

// ── GetByID 测试 ──

func TestGroupService_GetByID_EnrolledCount(t *testing.T) {
	svc, studentRepo, _, groupRepo, _ := setupTestGroupService()
	seedGroup(groupRepo, "grp-1", 15)

	// 两名学员在组
	gid := "grp-1"
	for _, id := range []string{"stu-1", "stu-2"} {
		s := seedStudent(studentRepo, id, "user-"+id)
		s.GroupID = &gid
	}
	// 一名不在组
	seedStudent(studentRepo, "stu-3", "user-stu-3")

	result, err := svc.GetByID(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.EnrolledCount != 2 {
		t.Errorf("期望在组人数=2，实际=%d", result.EnrolledCount)
	}
}

// ── ListEnrollable 测试 ──

func TestGroupService_ListEnrollable(t *testing.T) {
	svc, studentRepo, _, groupRepo, appRepo := setupTestGroupService()
	seedStudent(studentRepo, "stu-1", "user-1")

	seedGroup(groupRepo, "grp-1", 15)
	g2 := seedGroup(groupRepo, "grp-2", 15)
	g2.Status = model.GroupStatusCompleted // 非活跃，不展示

	// 对 grp-1 有两条历史申请，其中一条已批准
	now := time.Now()
	appRepo.apps["a1"] = &model.Application{
		ApplicationID: "a1", StudentID: "stu-1", GroupID: "grp-1",
		Status: model.ApplicationStatusRejected, AppliedAt: now,
	}
	appRepo.apps["a2"] = &model.Application{
		ApplicationID: "a2", StudentID: "stu-1", GroupID: "grp-1",
		Status: model.ApplicationStatusApproved, AppliedAt: now,
	}

	result, err := svc.ListEnrollable(context.Background(), "stu-1")
	if err != nil {
		t.Fatalf("ListEnrollable 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望仅 1 个活跃小组，实际=%d", len(result))
	}
	if result[0].ApplicationCount != 2 {
		t.Errorf("期望申请计数=2，实际=%d", result[0].ApplicationCount)
	}
	if !result[0].Accepted {
		t.Error("期望 Accepted=true")
	}
	if result[0].MaxApplications != model.MaxApplicationsPerGroup {
		t.Errorf("期望申请上限=%d，实际=%d", model.MaxApplicationsPerGroup, result[0].MaxApplications)
	}
}

// ── Update / Delete 测试 ──

func TestGroupService_Update_Status(t *testing.T) {
	svc, _, _, groupRepo, _ := setupTestGroupService()
	seedGroup(groupRepo, "grp-1", 15)

	status := model.GroupStatusCompleted
	result, err := svc.Update(context.Background(), "grp-1", &dto.UpdateGroupRequest{Status: &status}, "admin-1")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Status != model.GroupStatusCompleted {
		t.Errorf("期望状态=completed，实际=%s", result.Status)
	}
}

func TestGroupService_Delete_NotFound(t *testing.T) {
	svc, _, _, _, _ := setupTestGroupService()

	if err := svc.Delete(context.Background(), "nonexistent"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("期望 ErrGroupNotFound，实际=%v", err)
	}
}

// ── ListMembers 测试 ──

func TestGroupService_ListMembers(t *testing.T) {
	svc, studentRepo, _, groupRepo, _ := setupTestGroupService()
	seedGroup(groupRepo, "grp-1", 15)

	gid := "grp-1"
	s := seedStudent(studentRepo, "stu-1", "user-1")
	s.GroupID = &gid
	seedStudent(studentRepo, "stu-2", "user-2") // 不在组

	result, err := svc.ListMembers(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("ListMembers 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Errorf("期望 1 名成员，实际=%d", len(result))
	}
}
