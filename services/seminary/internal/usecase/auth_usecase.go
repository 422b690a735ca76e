package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"seminary/pkg/apperr"
	"seminary/pkg/jwt"
	"seminary/pkg/logger"
	"seminary/pkg/metrics"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/repo/persistent"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength    = 4
	maxUsernameLength    = 50
	maxDisplayNameLength = 100
)

var errInvalidCredentials = apperr.Unauthorized("invalid credentials")

// AuthUseCase registers users, issues bearer tokens and resolves them back
// to users. Tokens are stateless: there is no server-side revocation, so a
// token stays valid until it expires even after the client logs out.
type AuthUseCase interface {
	Register(ctx context.Context, username, password, displayName string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	Authorize(user *entity.User, requiredRole entity.Role) bool
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	EnsureAdmin(ctx context.Context, username, password, displayName string) (bool, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, password, displayName string) (user *entity.User, err error) {
	defer func() { uc.metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.Outcome(err)).Inc() }()
	return uc.createUser(ctx, username, password, displayName, entity.RoleMember)
}

func (uc *authUseCase) createUser(ctx context.Context, username, password, displayName string, role entity.Role) (*entity.User, error) {
	username = strings.TrimSpace(username)
	displayName = strings.TrimSpace(displayName)

	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(password) == "" {
		missing = append(missing, "password")
	}
	if displayName == "" {
		missing = append(missing, "displayName")
	}
	if len(missing) > 0 {
		return nil, apperr.InvalidInput("missing required fields: " + strings.Join(missing, ", "))
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, apperr.InvalidInput("password must be at least 4 characters")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, apperr.InvalidInput("username is too long")
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return nil, apperr.InvalidInput("displayName is too long")
	}

	_, err := uc.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, apperr.Conflict("username already taken")
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		Username:    username,
		Password:    string(hashedPassword),
		DisplayName: displayName,
		Role:        role,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Conflict("username already taken")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (user *entity.User, token string, err error) {
	defer func() { uc.metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Outcome(err)).Inc() }()

	user, err = uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	token, err = uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", errors.Wrap(err, "generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized("authorization token required")
	}

	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.KindUnauthorized, "invalid or expired token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthorized("invalid or expired token")
		}
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// Authorize is a flat role comparison; admin does not imply member.
func (uc *authUseCase) Authorize(user *entity.User, requiredRole entity.Role) bool {
	return user != nil && user.Role == requiredRole
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// EnsureAdmin creates the first admin account unless one already exists.
// It reports whether an account was created.
func (uc *authUseCase) EnsureAdmin(ctx context.Context, username, password, displayName string) (bool, error) {
	exists, err := uc.userRepo.ExistsWithRole(ctx, entity.RoleAdmin)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if password == "" {
		return false, apperr.InvalidInput("no admin account exists and ADMIN_PASSWORD is not set")
	}

	user, err := uc.createUser(ctx, username, password, displayName, entity.RoleAdmin)
	if err != nil {
		return false, err
	}
	uc.logger.Info("Created admin account %q", user.Username)
	return true, nil
}
