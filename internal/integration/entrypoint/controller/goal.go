package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// GoalController handles financial goal endpoints.
type GoalController struct {
	goalRepository adapter.GoalRepository
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(goalRepository adapter.GoalRepository) *GoalController {
	return &GoalController{
		goalRepository: goalRepository,
	}
}

// List handles GET /api/goals requests. Only active goals are listed.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	goals, err := c.goalRepository.FindByUserID(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toGoalResponses(userID, goals))
}

// Create handles POST /api/goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	now := time.Now().UTC()
	goal := goalFromRequest(req)
	goal.Active = true
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := c.goalRepository.Create(ctx.Request.Context(), userID, goal); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toGoalResponse(userID, *goal))
}

// Update handles PUT /api/goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	goal := goalFromRequest(req)
	goal.ID = goalID
	if err := c.goalRepository.Update(ctx.Request.Context(), userID, goal); err != nil {
		respondError(ctx, err)
		return
	}

	c.respondWithGoal(ctx, userID, goalID)
}

// UpdateProgress handles PUT /api/goals/:id/progress requests.
func (c *GoalController) UpdateProgress(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	if err := c.goalRepository.UpdateProgress(ctx.Request.Context(), userID, goalID, req.CurrentAmount); err != nil {
		respondError(ctx, err)
		return
	}

	c.respondWithGoal(ctx, userID, goalID)
}

// Delete handles DELETE /api/goals/:id requests. The goal is deactivated,
// not removed.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.goalRepository.Deactivate(ctx.Request.Context(), userID, goalID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}

func (c *GoalController) respondWithGoal(ctx *gin.Context, userID, goalID int64) {
	goal, err := c.goalRepository.FindByID(ctx.Request.Context(), userID, goalID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toGoalResponse(userID, *goal))
}

func goalFromRequest(req dto.GoalRequest) *entity.Goal {
	priority := entity.Priority(req.Priority)
	if priority == "" {
		priority = entity.PriorityMedium
	}
	return &entity.Goal{
		Name:         req.GoalName,
		Type:         entity.GoalType(req.GoalType),
		TargetAmount: req.TargetAmount,
		Deadline:     req.TargetDate.Time,
		Priority:     priority,
	}
}

func toGoalResponse(userID int64, goal entity.Goal) dto.GoalResponse {
	response := dto.ToGoalResponse(goal)
	response.UserID = userID
	return response
}

func toGoalResponses(userID int64, goals []entity.Goal) []dto.GoalResponse {
	response := make([]dto.GoalResponse, len(goals))
	for i, g := range goals {
		response[i] = toGoalResponse(userID, g)
	}
	return response
}
