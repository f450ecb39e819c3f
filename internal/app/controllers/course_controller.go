package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req, "course") {
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// GetCourseByID retrieves a course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// GetAllCourses retrieves all courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponses(courses)))
}

// UpdateCourse applies a partial update to a course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req, "course") {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCourseResponse(course)))
}

// AddPrerequisite records that the course requires prereqId. Repeating the
// call is harmless.
func (c *CourseController) AddPrerequisite(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}
	prereqID, ok := parseID(ctx, "prereqId", "prerequisite")
	if !ok {
		return
	}

	if err := c.courseService.AddPrerequisite(ctx.Request.Context(), id, prereqID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemovePrerequisite drops the prerequisite link if present
func (c *CourseController) RemovePrerequisite(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}
	prereqID, ok := parseID(ctx, "prereqId", "prerequisite")
	if !ok {
		return
	}

	if err := c.courseService.RemovePrerequisite(ctx.Request.Context(), id, prereqID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetRequiredBy lists the ids of the courses that require this one
func (c *CourseController) GetRequiredBy(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}

	courseIDs, err := c.courseService.GetRequiredBy(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if courseIDs == nil {
		courseIDs = []int64{}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"course_ids": courseIDs}))
}
