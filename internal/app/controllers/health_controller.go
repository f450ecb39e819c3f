package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// HealthController answers the placeholder and liveness endpoints
type HealthController struct {
	store repositories.SessionOpener
}

// NewHealthController creates a new HealthController
func NewHealthController(store repositories.SessionOpener) *HealthController {
	return &HealthController{store: store}
}

// Root greets the caller
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello from the Khoury Cyber Guide API"})
}

// Items returns the fixed placeholder list
func (c *HealthController) Items(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"items": []string{"item1", "item2", "item3"}})
}

// Health reports whether the store answers
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
}
