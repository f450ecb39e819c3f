package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// ClubController handles club-related operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{
		clubService: clubService,
	}
}

// CreateClub handles club creation
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if !bindJSON(ctx, &req, "club") {
		return
	}

	club, err := c.clubService.CreateClub(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// GetClubByID retrieves a club by ID
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "club")
	if !ok {
		return
	}

	club, err := c.clubService.GetClubByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// GetAllClubs retrieves all clubs
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	clubs, err := c.clubService.GetAllClubs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponses(clubs)))
}

// UpdateClub applies a partial update to a club
func (c *ClubController) UpdateClub(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "club")
	if !ok {
		return
	}

	var req dto.UpdateClubRequest
	if !bindJSON(ctx, &req, "club") {
		return
	}

	club, err := c.clubService.UpdateClub(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}
