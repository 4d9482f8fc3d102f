package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"edu-center/backend/config"
	"edu-center/backend/internal/dto"
	"edu-center/backend/internal/model"
	"edu-center/backend/internal/repository"
	"edu-center/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockUserRepo, *mockStudentRepo, *mockMentorRepo) {
	userRepo := newMockUserRepo()
	studentRepo := newMockStudentRepo()
	mentorRepo := newMockMentorRepo()
	repo := &repository.Repository{
		User:         userRepo,
		Student:      studentRepo,
		Mentor:       mentorRepo,
		Subject:      newMockSubjectRepo(),
		Group:        newMockGroupRepo(),
		Application:  newMockApplicationRepo(),
		ScheduleSlot: newMockScheduleSlotRepo(),
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)

	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, userRepo, studentRepo, mentorRepo
}

func seedUser(userRepo *mockUserRepo, id, username, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := &model.User{
		UserID:       id,
		Username:     username,
		Email:        username + "@test.local",
		PasswordHash: string(hash),
		Role:         role,
	}
	userRepo.users[id] = u
	return u
}

// ── Register 测试 ──

func TestAuthService_Register_Student(t *testing.T) {
	svc, _, studentRepo, _ := setupTestAuthService()

	req := &dto.RegisterRequest{
		Username:  "ali2026",
		Email:     "ali@test.local",
		Password:  "secret123",
		Role:      model.RoleStudent,
		FirstName: "Ali",
		LastName:  "Karimov",
	}

	result, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.Role != model.RoleStudent {
		t.Errorf("期望角色=student，实际=%s", result.Role)
	}

	// 应创建学员档案
	if _, err := studentRepo.GetByUserID(context.Background(), result.ID); err != nil {
		t.Error("注册后应存在学员档案")
	}
}

func TestAuthService_Register_Mentor(t *testing.T) {
	svc, _, _, mentorRepo := setupTestAuthService()

	result, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "ustoz1",
		Email:     "ustoz@test.local",
		Password:  "secret123",
		Role:      model.RoleMentor,
		FirstName: "Olim",
		LastName:  "Rahimov",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	if _, err := mentorRepo.GetByUserID(context.Background(), result.ID); err != nil {
		t.Error("注册后应存在导师档案")
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "ali2026",
		Email:     "other@test.local",
		Password:  "secret123",
		Role:      model.RoleStudent,
		FirstName: "Ali",
		LastName:  "Karimov",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望 ErrUsernameTaken，实际=%v", err)
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:  "boshqa",
		Email:     "ali2026@test.local",
		Password:  "secret123",
		Role:      model.RoleStudent,
		FirstName: "Ali",
		LastName:  "Karimov",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际=%v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ali2026",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("应返回 Token 对")
	}
	if result.User.Role != model.RoleStudent {
		t.Errorf("期望角色=student，实际=%s", result.User.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ali2026",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

// ── RefreshToken 测试 ──

func TestAuthService_RefreshToken_Success(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ali2026",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("应返回新的 AccessToken")
	}
}

func TestAuthService_RefreshToken_AccessTokenRejected(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ali2026",
		Password: "secret123",
	})

	// 用 access token 换发应被拒绝
	_, err := svc.RefreshToken(context.Background(), &dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	if !errors.Is(err, ErrNotRefreshToken) {
		t.Errorf("期望 ErrNotRefreshToken，实际=%v", err)
	}
}

// ── ChangePassword 测试 ──

func TestAuthService_ChangePassword(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	err := svc.ChangePassword(context.Background(), "u1", &dto.ChangePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret456",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 新密码可登录
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ali2026",
		Password: "newsecret456",
	}); err != nil {
		t.Errorf("新密码登录应成功: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, userRepo, _, _ := setupTestAuthService()
	seedUser(userRepo, "u1", "ali2026", "secret123", model.RoleStudent)

	err := svc.ChangePassword(context.Background(), "u1", &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newsecret456",
	})
	if !errors.Is(err, ErrOldPasswordWrong) {
		t.Errorf("期望 ErrOldPasswordWrong，实际=%v", err)
	}
}
