package service

import (
	"context"
	"strings"
	"testing"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
	"skillport-api/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(memory.New())

	job, err := svc.Create(ctx, models.Job{ID: 42, Title: "Backend intern", RecruiterID: 7})
	require.NoError(t, err)
	assert.NotEqual(t, int64(42), job.ID)
	assert.False(t, job.CreatedAt.IsZero())

	got, err := svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend intern", got.Title)

	byRecruiter, err := svc.ListByRecruiter(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, byRecruiter, 1)

	require.NoError(t, svc.Delete(ctx, job.ID))
	require.NoError(t, svc.Delete(ctx, job.ID))

	_, err = svc.Get(ctx, job.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Create(ctx, models.Job{Title: "Long", Description: strings.Repeat("é", 2000)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.Job{Title: "Too long", Description: strings.Repeat("é", 2001)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	jobs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestApplicationService(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	jobs := NewJobService(store)
	svc := NewApplicationService(store, store)

	job, err := jobs.Create(ctx, models.Job{Title: "Data analyst", Company: "Acme"})
	require.NoError(t, err)

	app, err := svc.Create(ctx, models.Application{StudentID: 3, JobID: job.ID})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "Data analyst", app.JobTitle)
	assert.Equal(t, "Acme", app.CompanyName)
	assert.False(t, app.AppliedAt.IsZero())

	other, err := svc.Create(ctx, models.Application{StudentID: 3, JobID: 999, JobTitle: "Gone", Status: "Interviewing"})
	require.NoError(t, err)
	assert.Equal(t, "Interviewing", other.Status)

	mine, err := svc.ListByStudent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	applicants, err := svc.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, app.ID, applicants[0].ID)

	updated, err := svc.UpdateStatus(ctx, app.ID, "  Accepted ")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)
	assert.Equal(t, int64(3), updated.StudentID)

	_, err = svc.UpdateStatus(ctx, app.ID, " ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.UpdateStatus(ctx, 999, "Rejected")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Application not found", apperr.PublicMessage(err))
}

func TestPortfolioServices(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	owner := &models.User{Email: "a@x.com"}
	require.NoError(t, store.CreateUser(ctx, owner))

	skills := NewSkillService(store)
	projects := NewProjectService(store)
	certs := NewCertificationService(store)

	skill, err := skills.Create(ctx, models.Skill{UserID: owner.ID, Name: "Go", Level: "Advanced"})
	require.NoError(t, err)
	assert.NotZero(t, skill.ID)

	_, err = skills.Create(ctx, models.Skill{Name: "Go"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "userId is required", apperr.PublicMessage(err))

	_, err = skills.Create(ctx, models.Skill{UserID: 999, Name: "Go"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "User does not exist", apperr.PublicMessage(err))

	_, err = projects.Create(ctx, models.Project{UserID: owner.ID, Title: "CLI"})
	require.NoError(t, err)

	_, err = projects.Create(ctx, models.Project{UserID: owner.ID, Description: strings.Repeat("é", 1001)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = certs.Create(ctx, models.Certification{UserID: owner.ID, Name: "CKA", IssueDate: models.NewDate(2024, 5, 1)})
	require.NoError(t, err)

	mySkills, err := skills.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mySkills, 1)

	allProjects, err := projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allProjects, 1)

	myCerts, err := certs.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, myCerts, 1)
	assert.Equal(t, "2024-05-01", myCerts[0].IssueDate.String())

	require.NoError(t, skills.Delete(ctx, skill.ID))
	require.NoError(t, skills.Delete(ctx, skill.ID))

	mySkills, err = skills.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, mySkills)
}
