package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// TopicController handles topic-related operations
type TopicController struct {
	topicService services.TopicService
}

// NewTopicController creates a new TopicController
func NewTopicController(topicService services.TopicService) *TopicController {
	return &TopicController{
		topicService: topicService,
	}
}

// CreateTopic handles topic creation
func (c *TopicController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateTopicRequest
	if !bindJSON(ctx, &req, "topic") {
		return
	}

	topic, err := c.topicService.CreateTopic(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewTopicResponse(topic)))
}

// GetTopicByID retrieves a topic by ID
func (c *TopicController) GetTopicByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "topic")
	if !ok {
		return
	}

	topic, err := c.topicService.GetTopicByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTopicResponse(topic)))
}

// GetAllTopics retrieves all topics
func (c *TopicController) GetAllTopics(ctx *gin.Context) {
	topics, err := c.topicService.GetAllTopics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTopicResponses(topics)))
}

// UpdateTopic applies a partial update to a topic
func (c *TopicController) UpdateTopic(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "topic")
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if !bindJSON(ctx, &req, "topic") {
		return
	}

	topic, err := c.topicService.UpdateTopic(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTopicResponse(topic)))
}
