package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/controllers"
	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Health     *controllers.HealthController
	Topics     *controllers.TopicController
	Courses    *controllers.CourseController
	Professors *controllers.ProfessorController
	Clubs      *controllers.ClubController
	Resources  []*controllers.ResourceController
}

// SetupRouter configures all application routes. Catalog routes run inside a
// request-scoped store session.
func SetupRouter(router *gin.Engine, c *Controllers, session gin.HandlerFunc) {
	// Placeholder routes
	router.GET("/", c.Health.Root)
	router.GET("/api/items", c.Health.Items)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	catalog := v1.Group("")
	catalog.Use(session)

	topics := catalog.Group("/topics")
	{
		topics.POST("", c.Topics.CreateTopic)
		topics.GET("", c.Topics.GetAllTopics)
		topics.GET("/:id", c.Topics.GetTopicByID)
		topics.PATCH("/:id", c.Topics.UpdateTopic)
	}

	courses := catalog.Group("/courses")
	{
		courses.POST("", c.Courses.CreateCourse)
		courses.GET("", c.Courses.GetAllCourses)
		courses.GET("/:id", c.Courses.GetCourseByID)
		courses.PATCH("/:id", c.Courses.UpdateCourse)

		// Prerequisite links: :id requires :prereqId
		courses.PUT("/:id/prereqs/:prereqId", c.Courses.AddPrerequisite)
		courses.DELETE("/:id/prereqs/:prereqId", c.Courses.RemovePrerequisite)
		courses.GET("/:id/required-by", c.Courses.GetRequiredBy)
	}

	professors := catalog.Group("/professors")
	{
		professors.POST("", c.Professors.CreateProfessor)
		professors.GET("", c.Professors.GetAllProfessors)
		professors.GET("/:id", c.Professors.GetProfessorByID)
		professors.PATCH("/:id", c.Professors.UpdateProfessor)
	}

	clubs := catalog.Group("/clubs")
	{
		clubs.POST("", c.Clubs.CreateClub)
		clubs.GET("", c.Clubs.GetAllClubs)
		clubs.GET("/:id", c.Clubs.GetClubByID)
		clubs.PATCH("/:id", c.Clubs.UpdateClub)
	}

	// Degree plans, advising, co-op and resume listings share one handler set
	for _, rc := range c.Resources {
		group := catalog.Group("/" + rc.Kind().Path())
		group.POST("", rc.CreateResource)
		group.GET("", rc.GetAllResources)
		group.GET("/:id", rc.GetResourceByID)
		group.PATCH("/:id", rc.UpdateResource)
	}
}

// NewControllers builds every controller over svc
func NewControllers(svc *services.Services, store repositories.SessionOpener) *Controllers {
	c := &Controllers{
		Health:     controllers.NewHealthController(store),
		Topics:     controllers.NewTopicController(svc.Topics),
		Courses:    controllers.NewCourseController(svc.Courses),
		Professors: controllers.NewProfessorController(svc.Professors),
		Clubs:      controllers.NewClubController(svc.Clubs),
	}
	for _, kind := range models.ResourceKinds() {
		c.Resources = append(c.Resources, controllers.NewResourceController(kind, svc.Resources))
	}
	return c
}
