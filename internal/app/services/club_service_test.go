package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
)

func clubRequest() *dto.CreateClubRequest {
	return &dto.CreateClubRequest{
		Name:     "Cybersecurity Club",
		Location: "West Village H",
		Level:    []string{"undergrad", "grad"},
		Email:    "cyber@example.edu",
	}
}

func TestClub_TagsRoundTripAsSet(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	req := clubRequest()
	req.Tags = []models.Tag{models.TagUndergraduate, models.TagHonors}
	created, err := svc.Clubs.CreateClub(ctx, req)
	require.NoError(t, err)

	got, err := svc.Clubs.GetClubByID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Tag{models.TagHonors, models.TagUndergraduate}, got.Tags)
	assert.Equal(t, []string{"undergrad", "grad"}, got.Level)
}

func TestClub_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateClubRequest)
		field  string
	}{
		{name: "unknown tag", mutate: func(r *dto.CreateClubRequest) { r.Tags = []models.Tag{"Alumni"} }, field: "tags[0]"},
		{name: "bad email", mutate: func(r *dto.CreateClubRequest) { r.Email = "nope" }, field: "email"},
		{name: "missing level", mutate: func(r *dto.CreateClubRequest) { r.Level = nil }, field: "level"},
		{name: "blank level label", mutate: func(r *dto.CreateClubRequest) { r.Level = []string{""} }, field: "level[0]"},
		{name: "missing location", mutate: func(r *dto.CreateClubRequest) { r.Location = "" }, field: "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestServices(t)
			req := clubRequest()
			tt.mutate(req)
			_, err := svc.Clubs.CreateClub(context.Background(), req)
			assert.Equal(t, []string{tt.field}, validationFields(t, err))
		})
	}
}

func TestClub_PartialUpdate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Clubs.CreateClub(ctx, clubRequest())
	require.NoError(t, err)

	tags := []models.Tag{models.TagGraduate}
	updated, err := svc.Clubs.UpdateClub(ctx, created.ID, &dto.UpdateClubRequest{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, tags, updated.Tags)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Level, updated.Level)

	// Nothing sent: the record is returned unchanged
	same, err := svc.Clubs.UpdateClub(ctx, created.ID, &dto.UpdateClubRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)
}
