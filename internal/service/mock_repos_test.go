package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"edu-center/backend/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("stu-%d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, groupID string, offset, limit int) ([]model.Student, int64, error) {
	var all []model.Student
	for _, s := range m.students {
		if groupID != "" && (s.GroupID == nil || *s.GroupID != groupID) {
			continue
		}
		all = append(all, *s)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockStudentRepo) ListByGroup(_ context.Context, groupID string) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.Compare(result[i].LastName, result[j].LastName) < 0
	})
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) AssignGroup(_ context.Context, studentID string, groupID *string) error {
	s, ok := m.students[studentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.GroupID = groupID
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

func (m *mockStudentRepo) CountByGroup(_ context.Context, groupID string) (int64, error) {
	var n int64
	for _, s := range m.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			n++
		}
	}
	return n, nil
}

// ── Mock MentorRepository ──

type mockMentorRepo struct {
	mentors map[string]*model.Mentor
	seq     int
}

func newMockMentorRepo() *mockMentorRepo {
	return &mockMentorRepo{mentors: make(map[string]*model.Mentor)}
}

func (m *mockMentorRepo) Create(_ context.Context, mentor *model.Mentor) error {
	if mentor.MentorID == "" {
		m.seq++
		mentor.MentorID = fmt.Sprintf("mentor-%d", m.seq)
	}
	m.mentors[mentor.MentorID] = mentor
	return nil
}

func (m *mockMentorRepo) GetByID(_ context.Context, id string) (*model.Mentor, error) {
	if mt, ok := m.mentors[id]; ok {
		return mt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMentorRepo) GetByUserID(_ context.Context, userID string) (*model.Mentor, error) {
	for _, mt := range m.mentors {
		if mt.UserID == userID {
			return mt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMentorRepo) List(_ context.Context, offset, limit int) ([]model.Mentor, int64, error) {
	var all []model.Mentor
	for _, mt := range m.mentors {
		all = append(all, *mt)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockMentorRepo) Update(_ context.Context, mentor *model.Mentor) error {
	m.mentors[mentor.MentorID] = mentor
	return nil
}

func (m *mockMentorRepo) Delete(_ context.Context, id string) error {
	delete(m.mentors, id)
	return nil
}

func (m *mockMentorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.mentors)), nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
	seq      int
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.SubjectID == "" {
		m.seq++
		subject.SubjectID = fmt.Sprintf("subj-%d", m.seq)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id string) error {
	delete(m.subjects, id)
	return nil
}

func (m *mockSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.subjects)), nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups map[string]*model.Group
	seq    int
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[string]*model.Group)}
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.Group) error {
	if group.GroupID == "" {
		m.seq++
		group.GroupID = fmt.Sprintf("grp-%d", m.seq)
	}
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id string) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context, status string, offset, limit int) ([]model.Group, int64, error) {
	var all []model.Group
	for _, g := range m.groups {
		if status != "" && g.Status != status {
			continue
		}
		all = append(all, *g)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockGroupRepo) ListByStatus(_ context.Context, status string) ([]model.Group, error) {
	var result []model.Group
	for _, g := range m.groups {
		if g.Status == status {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGroupRepo) ListByMentor(_ context.Context, mentorID string) ([]model.Group, error) {
	var result []model.Group
	for _, g := range m.groups {
		if g.MentorID != nil && *g.MentorID == mentorID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.Group) error {
	m.groups[group.GroupID] = group
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id string) error {
	delete(m.groups, id)
	return nil
}

func (m *mockGroupRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.groups)), nil
}

// ── Mock ApplicationRepository ──

type mockApplicationRepo struct {
	apps map[string]*model.Application
	seq  int
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(_ context.Context, app *model.Application) error {
	if app.ApplicationID == "" {
		for {
			m.seq++
			id := fmt.Sprintf("app-%d", m.seq)
			if _, exists := m.apps[id]; !exists {
				app.ApplicationID = id
				break
			}
		}
	}
	m.apps[app.ApplicationID] = app
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.apps[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) List(_ context.Context, status string, offset, limit int) ([]model.Application, int64, error) {
	var all []model.Application
	for _, a := range m.apps {
		if status != "" && a.Status != status {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].AppliedAt.After(all[j].AppliedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockApplicationRepo) ListByStudent(_ context.Context, studentID string) ([]model.Application, error) {
	var result []model.Application
	for _, a := range m.apps {
		if a.StudentID == studentID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AppliedAt.After(result[j].AppliedAt) })
	return result, nil
}

func (m *mockApplicationRepo) ListRecentPending(_ context.Context, limit int) ([]model.Application, error) {
	var result []model.Application
	for _, a := range m.apps {
		if a.Status == model.ApplicationStatusPending {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AppliedAt.After(result[j].AppliedAt) })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockApplicationRepo) CountByStudentAndGroup(_ context.Context, studentID, groupID string) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.StudentID == studentID && a.GroupID == groupID {
			n++
		}
	}
	return n, nil
}

func (m *mockApplicationRepo) HasApproved(_ context.Context, studentID, groupID string) (bool, error) {
	for _, a := range m.apps {
		if a.StudentID == studentID && a.GroupID == groupID && a.Status == model.ApplicationStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, a := range m.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockApplicationRepo) Update(_ context.Context, app *model.Application) error {
	m.apps[app.ApplicationID] = app
	return nil
}

// ── Mock ScheduleSlotRepository ──

type mockScheduleSlotRepo struct {
	slots map[string]*model.ScheduleSlot
	seq   int
}

func newMockScheduleSlotRepo() *mockScheduleSlotRepo {
	return &mockScheduleSlotRepo{slots: make(map[string]*model.ScheduleSlot)}
}

func (m *mockScheduleSlotRepo) Create(_ context.Context, slot *model.ScheduleSlot) error {
	if slot.SlotID == "" {
		m.seq++
		slot.SlotID = fmt.Sprintf("slot-%d", m.seq)
	}
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockScheduleSlotRepo) GetByID(_ context.Context, id string) (*model.ScheduleSlot, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleSlotRepo) GetActiveByGroupAndDay(_ context.Context, groupID, day string) (*model.ScheduleSlot, error) {
	for _, s := range m.slots {
		if s.GroupID == groupID && s.DayOfWeek == day && s.Status == model.SlotStatusActive {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleSlotRepo) ListByGroup(_ context.Context, groupID string, activeOnly bool) ([]model.ScheduleSlot, error) {
	var result []model.ScheduleSlot
	for _, s := range m.slots {
		if s.GroupID != groupID {
			continue
		}
		if activeOnly && s.Status != model.SlotStatusActive {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockScheduleSlotRepo) Update(_ context.Context, slot *model.ScheduleSlot) error {
	m.slots[slot.SlotID] = slot
	return nil
}

func (m *mockScheduleSlotRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range m.slots {
		if s.Status == model.SlotStatusActive {
			n++
		}
	}
	return n, nil
}
