package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// PlatformController handles banking platform endpoints.
type PlatformController struct {
	platformRepository adapter.PlatformRepository
}

// NewPlatformController creates a new platform controller instance.
func NewPlatformController(platformRepository adapter.PlatformRepository) *PlatformController {
	return &PlatformController{
		platformRepository: platformRepository,
	}
}

// List handles GET /api/platforms requests. Platforms are public.
func (c *PlatformController) List(ctx *gin.Context) {
	platforms, err := c.platformRepository.FindActive(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]dto.PlatformResponse, len(platforms))
	for i, p := range platforms {
		response[i] = dto.ToPlatformResponse(p)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /api/platforms requests.
func (c *PlatformController) Create(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	var req dto.CreatePlatformRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	platform := &entity.Platform{
		Name:   req.Name,
		Type:   entity.PlatformType(req.PlatformType),
		Active: true,
	}
	if req.LogoURL != nil {
		platform.LogoURL = *req.LogoURL
	}

	if err := c.platformRepository.Create(ctx.Request.Context(), platform); err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.ToPlatformResponse(*platform)
	response.APIEndpoint = req.APIEndpoint
	ctx.JSON(http.StatusOK, response)
}
