package http

import (
	"net/http"

	"seminary/pkg/apperr"
	"seminary/pkg/logger"
	"seminary/pkg/middleware"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username    string `json:"username" example:"kim"`
	Password    string `json:"password" example:"secret"`
	DisplayName string `json:"displayName" example:"김철수"`
	// Name is accepted as an alias of DisplayName.
	Name string `json:"name,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"admin123"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a member account. The password is stored as a bcrypt hash.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.Wrap(err, apperr.KindInvalidInput, "invalid request body"))
		return
	}
	if req.DisplayName == "" {
		req.DisplayName = req.Name
	}

	user, err := h.authUseCase.Register(c.Request.Context(), req.Username, req.Password, req.DisplayName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary      Login user
// @Description  Verify credentials and return a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.Wrap(err, apperr.KindInvalidInput, "invalid request body"))
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// Me godoc
// @Summary      Get current user info
// @Description  Resolve the bearer token to the stored user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		respondError(c, h.logger, apperr.Unauthorized("authorization token required"))
		return
	}

	user, err := h.authUseCase.Authenticate(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// RequireAdmin runs after middleware.AuthMiddleware. It loads the account
// named by the token so deleted or demoted users lose write access at once.
func (h *AuthHandler) RequireAdmin(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			err = apperr.Unauthorized("account no longer exists")
		}
		respondError(c, h.logger, err)
		c.Abort()
		return
	}

	if !h.authUseCase.Authorize(user, entity.RoleAdmin) {
		respondError(c, h.logger, apperr.Forbidden("admin role required"))
		c.Abort()
		return
	}

	c.Set(contextUser, user)
	c.Next()
}
