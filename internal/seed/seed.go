// Package seed loads a small sample catalog into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
)

func codePtr(v int) *int { return &v }

// CreateDefaultData fills an empty catalog with sample records. A store that
// already holds topics is left untouched.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, svc *services.Services, lgr zerolog.Logger) error {
	count, err := repos.Topics.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count topics: %w", err)
	}
	if count > 0 {
		lgr.Info().Int("topics", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating sample catalog...")

	fundies, err := svc.Courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		CourseProgram: models.ProgramCS,
		CourseCode:    codePtr(2500),
		Title:         "Fundamentals of Computer Science 1",
		Terms:         "Fall, Spring",
		Attributes:    []models.CourseAttribute{models.AttributeFormalQuantReasoning, models.AttributeNaturalDesignedWorld},
		CategoryTag:   []models.CourseCategoryTag{models.CategoryCSRequirement},
	})
	if err != nil {
		return fmt.Errorf("failed to create CS 2500: %w", err)
	}

	foundations, err := svc.Courses.CreateCourse(ctx, &dto.CreateCourseRequest{
		CourseProgram: models.ProgramCY,
		CourseCode:    codePtr(2550),
		Title:         "Foundations of Cybersecurity",
		Description:   "Security principles, threat modeling and the ethics of the field.",
		Terms:         "Fall, Spring",
		Attributes:    []models.CourseAttribute{models.AttributeEthicalReasoning},
		CategoryTag:   []models.CourseCategoryTag{models.CategoryCYRequirement},
		PrereqIDs:     []int64{fundies.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to create CY 2550: %w", err)
	}

	networks, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:       "Network Security",
		Description: "Protocols, traffic analysis and defending networked systems.",
		OffCampus: &dto.OffCampusRequest{
			Certifications: map[string]string{"CompTIA Security+": "https://www.comptia.org/certifications/security"},
			LearningTools:  map[string]string{"TryHackMe": "https://tryhackme.com"},
		},
		CourseIDs: []int64{foundations.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to create network security topic: %w", err)
	}

	programming, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:     "Programming",
		CourseIDs: []int64{fundies.ID},
	})
	if err != nil {
		return fmt.Errorf("failed to create programming topic: %w", err)
	}

	// The remaining records are independent, collect every failure
	var finalErr error

	if _, err := svc.Professors.CreateProfessor(ctx, &dto.CreateProfessorRequest{
		FullName:    "Alex Rivera",
		AreaOfFocus: "Network security",
		CourseIDs:   []int64{foundations.ID},
		TopicIDs:    []int64{networks.ID},
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating sample professor")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := svc.Clubs.CreateClub(ctx, &dto.CreateClubRequest{
		Name:     "Northeastern Cybersecurity Club",
		Location: "Boston",
		Level:    []string{"Undergraduate", "Graduate"},
		Mission:  "Hands-on security practice through CTFs and workshops.",
		Tags:     []models.Tag{models.TagUndergraduate, models.TagGraduate},
		TopicIDs: []int64{networks.ID, programming.ID},
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating sample club")
		finalErr = errors.Join(finalErr, err)
	}

	for _, kind := range models.ResourceKinds() {
		if _, err := svc.Resources.CreateResource(ctx, kind, &dto.CreateResourceRequest{
			Title: "Getting started: " + kind.Label(),
			Tags:  []models.Tag{models.TagUndergraduate},
		}); err != nil {
			lgr.Error().Err(err).Str("kind", string(kind)).Msg("Error creating sample listing")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample catalog created")
	}
	return finalErr
}
