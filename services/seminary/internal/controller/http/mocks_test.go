package http

import (
	"context"

	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, password, displayName string) (*entity.User, error) {
	args := m.Called(username, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Authorize(user *entity.User, requiredRole entity.Role) bool {
	args := m.Called(user, requiredRole)
	return args.Bool(0)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) EnsureAdmin(ctx context.Context, username, password, displayName string) (bool, error) {
	args := m.Called(username, password, displayName)
	return args.Bool(0), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockLectureUseCase is a mock implementation of LectureUseCase
type MockLectureUseCase struct {
	mock.Mock
}

func (m *MockLectureUseCase) List(ctx context.Context, query entity.ListQuery) (*entity.LecturePage, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LecturePage), args.Error(1)
}

func (m *MockLectureUseCase) Get(ctx context.Context, id string) (*entity.Lecture, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lecture), args.Error(1)
}

func (m *MockLectureUseCase) Create(ctx context.Context, caller *entity.User, input entity.LectureInput, uploads []usecase.Upload) (*entity.Lecture, error) {
	args := m.Called(caller, input, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lecture), args.Error(1)
}

func (m *MockLectureUseCase) Update(ctx context.Context, caller *entity.User, id string, patch entity.LecturePatch, uploads []usecase.Upload) (*entity.Lecture, error) {
	args := m.Called(caller, id, patch, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lecture), args.Error(1)
}

func (m *MockLectureUseCase) Delete(ctx context.Context, caller *entity.User, id string) error {
	args := m.Called(caller, id)
	return args.Error(0)
}

var _ usecase.LectureUseCase = (*MockLectureUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser stands in for AuthHandler.RequireAdmin in lecture handler tests.
func asUser(userID string, role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextUser, &entity.User{ID: userID, Role: role})
		c.Next()
	}
}
