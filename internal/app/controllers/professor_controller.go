package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// CreateProfessor handles professor creation
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !bindJSON(ctx, &req, "professor") {
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewProfessorResponse(professor)))
}

// GetProfessorByID retrieves a professor by ID
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "professor")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewProfessorResponse(professor)))
}

// GetAllProfessors retrieves all professors
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	professors, err := c.professorService.GetAllProfessors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewProfessorResponses(professors)))
}

// UpdateProfessor applies a partial update to a professor
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "professor")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if !bindJSON(ctx, &req, "professor") {
		return
	}

	professor, err := c.professorService.UpdateProfessor(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewProfessorResponse(professor)))
}
