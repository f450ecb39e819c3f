package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// ResourceController serves one resource listing. Routes mount one
// controller per kind.
type ResourceController struct {
	kind            models.ResourceKind
	resourceService services.ResourceService
}

// NewResourceController creates a controller bound to kind
func NewResourceController(kind models.ResourceKind, resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		kind:            kind,
		resourceService: resourceService,
	}
}

// Kind returns the listing served by the controller
func (c *ResourceController) Kind() models.ResourceKind {
	return c.kind
}

func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if !bindJSON(ctx, &req, c.kind.Label()) {
		return
	}

	res, err := c.resourceService.CreateResource(ctx.Request.Context(), c.kind, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewResourceResponse(res)))
}

func (c *ResourceController) GetResourceByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", c.kind.Label())
	if !ok {
		return
	}

	res, err := c.resourceService.GetResourceByID(ctx.Request.Context(), c.kind, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewResourceResponse(res)))
}

func (c *ResourceController) GetAllResources(ctx *gin.Context) {
	resources, err := c.resourceService.GetAllResources(ctx.Request.Context(), c.kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewResourceResponses(resources)))
}

func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", c.kind.Label())
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if !bindJSON(ctx, &req, c.kind.Label()) {
		return
	}

	res, err := c.resourceService.UpdateResource(ctx.Request.Context(), c.kind, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewResourceResponse(res)))
}
