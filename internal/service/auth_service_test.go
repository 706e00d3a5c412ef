package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quotecraft/internal/config"
	"quotecraft/internal/dto"
	"quotecraft/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	r.users[strings.ToLower(u.Email)] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[strings.ToLower(email)]
	if !ok || !u.Active {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Active {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[strings.ToLower(u.Email)] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = false
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = true
			return nil
		}
	}
	return errors.New("not found")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	assert.NoError(t, err)
	u := &model.User{
		ID: uuid.New(), Email: email, FullName: "Test User",
		PasswordHash: string(hash), Role: role, Active: true,
	}
	repo.users[strings.ToLower(email)] = u
	return u
}

func signToken(t *testing.T, userID string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID, "email": "test@example.com", "role": "user",
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

// ── Tests: Register ───────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "jane@contractor.com", Password: "password123", FullName: "Jane Mason",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleUser, resp.User.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "jane@contractor.com", "password123", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "jane@contractor.com", Password: "otherpass1", FullName: "Jane Again",
	})
	assert.EqualError(t, err, "email already registered")
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@quotecraft.local", "password123", model.RoleAdmin)
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@quotecraft.local", Password: "password123",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "jane@contractor.com", "correctpass", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "jane@contractor.com", Password: "wrongpass",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "gone@contractor.com", "password123", model.RoleUser)
	u.Active = false
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "gone@contractor.com", Password: "password123",
	})
	assert.Error(t, err)
}

// ── Tests: Refresh ────────────────────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "jane@contractor.com", "password123", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "jane@contractor.com", Password: "password123",
	})
	assert.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, u.Email, resp.User.Email)
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newTestCfg())
	_, err := svc.Refresh(context.Background(), "this.is.garbage")
	assert.Error(t, err)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "jane@contractor.com", "password123", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	expired := signToken(t, u.ID.String(), -time.Second)
	_, err := svc.Refresh(context.Background(), expired)
	assert.Error(t, err)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "jane@contractor.com", "password123", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	tok := signToken(t, u.ID.String(), time.Hour)
	u.Active = false
	_, err := svc.Refresh(context.Background(), tok)
	assert.EqualError(t, err, "user not found or inactive")
}

// ── Tests: User management ────────────────────────────────────────────────────

func TestUpdateUser_ChangesPassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "jane@contractor.com", "oldpassword", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	newPass := "newpassword1"
	_, err := svc.UpdateUser(context.Background(), u.ID, dto.UpdateUserRequest{Password: &newPass})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "jane@contractor.com", Password: "newpassword1",
	})
	assert.NoError(t, err)
}

func TestDeactivateUser_HidesFromList(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "jane@contractor.com", "password123", model.RoleUser)
	svc := NewAuthService(repo, newTestCfg())

	assert.NoError(t, svc.DeactivateUser(context.Background(), u.ID))

	active, err := svc.ListUsers(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, active, 0)

	all, err := svc.ListUsers(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.False(t, all[0].Active)
}
