package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/client/internal/integration/entrypoint/middleware"
)

// AuthController handles registration and login.
type AuthController struct {
	userRepository  adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	userRepository adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *AuthController {
	return &AuthController{
		userRepository:  userRepository,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Register handles POST /api/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	// Reject taken emails
	exists, err := c.userRepository.ExistsByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if exists {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Email already registered"})
		return
	}

	if err := c.passwordService.ValidatePasswordStrength(req.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Password must be at least 8 characters long"})
		return
	}

	// Hash password
	hash, err := c.passwordService.HashPassword(req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := &entity.User{
		Email:     req.Email,
		FullName:  req.FullName,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.userRepository.Create(ctx.Request.Context(), user, hash); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// Login handles POST /api/login requests. The form's username is the email.
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		respondValidationError(ctx, err)
		return
	}

	// Verify credentials
	user, hash, err := c.userRepository.FindByEmail(ctx.Request.Context(), form.Username)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		respondError(ctx, err)
		return
	}
	if user == nil || !user.Active || c.passwordService.VerifyPassword(hash, form.Password) != nil {
		middleware.Unauthorized(ctx, "Incorrect email or password")
		return
	}

	// Issue token
	token, err := c.tokenService.GenerateAccessToken(ctx.Request.Context(), user.ID, user.Email)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
