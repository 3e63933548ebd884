package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/client/internal/integration/entrypoint/middleware"
)

// UserController handles the current-user endpoint.
type UserController struct {
	userRepository adapter.UserRepository
}

// NewUserController creates a new user controller instance.
func NewUserController(userRepository adapter.UserRepository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

// Me handles GET /api/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	user, err := c.userRepository.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		// A token for a user that no longer exists is not a valid credential
		if errors.Is(err, domainerror.ErrUserNotFound) {
			middleware.Unauthorized(ctx, "Could not validate credentials")
			return
		}
		respondError(ctx, err)
		return
	}
	if !user.Active {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Inactive user"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(*user))
}
