package repository

import (
	"bitwise74/task-api/db"
	"bitwise74/task-api/internal/model"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	d, err := db.New("sqlite", filepath.Join(t.TempDir(), "test.db"), true)
	require.NoError(t, err)

	return d
}

func seedUser(t *testing.T, r *Users, email string) model.User {
	t.Helper()

	u, err := r.Create(context.Background(), model.User{
		Username:     "user",
		Email:        email,
		PasswordHash: "x",
	})
	require.NoError(t, err)

	return u
}

func ptr[T any](v T) *T {
	return &v
}

func TestProjectFindPreloadsUserAndTasks(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects := NewUsers(d), NewProjects(d)

	owner := seedUser(t, users, "owner@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p", Description: "d"})
	require.NoError(t, err)

	got, err := projects.FindByID(ctx, p.ID, "User", "Tasks")
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, owner.Email, got.User.Email)
	assert.NotNil(t, got.Tasks)
	assert.Empty(t, got.Tasks)

	_, err = NewTasks(d).Create(ctx, model.Task{ProjectID: p.ID, Title: "t", Description: "d"})
	require.NoError(t, err)

	got, err = projects.FindByID(ctx, p.ID, "User", "Tasks")
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 1)
}

func TestProjectNotFound(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	projects := NewProjects(d)

	_, err := projects.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = projects.Update(ctx, 99, model.ProjectPatch{Title: model.Of("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, projects.Delete(ctx, 99), ErrNotFound)
}

func TestProjectUpdateOnlyTouchesPatchedColumns(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects := NewUsers(d), NewProjects(d)

	owner := seedUser(t, users, "owner@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "old", Description: "keep"})
	require.NoError(t, err)

	got, err := projects.Update(ctx, p.ID, model.ProjectPatch{Title: model.Of("new")})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "keep", got.Description)
	assert.Equal(t, owner.ID, got.UserID)
}

func TestProjectListPaginates(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects := NewUsers(d), NewProjects(d)

	owner := seedUser(t, users, "owner@example.com")
	for range 5 {
		_, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p"})
		require.NoError(t, err)
	}

	page, err := projects.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Data, 2)
	assert.Equal(t, uint(3), page.Data[0].ID)
	require.NotNil(t, page.Data[0].User)

	page, err = projects.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPerPage, page.PerPage)
	assert.Len(t, page.Data, 5)
}

func TestProjectDeleteCascadesTasks(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects, tasks := NewUsers(d), NewProjects(d), NewTasks(d)

	owner := seedUser(t, users, "owner@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p"})
	require.NoError(t, err)

	task, err := tasks.Create(ctx, model.Task{ProjectID: p.ID, Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, p.ID))

	_, err = tasks.FindByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRequiresExistingProject(t *testing.T) {
	d := newTestDB(t)

	_, err := NewTasks(d).Create(context.Background(), model.Task{ProjectID: 7, Title: "t", Description: "d"})
	assert.Error(t, err)
}

func TestUserDeleteNullsAssignee(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects, tasks := NewUsers(d), NewProjects(d), NewTasks(d)

	owner := seedUser(t, users, "owner@example.com")
	assignee := seedUser(t, users, "assignee@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p"})
	require.NoError(t, err)

	task, err := tasks.Create(ctx, model.Task{ProjectID: p.ID, UserID: &assignee.ID, Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, assignee.ID))

	got, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
}

func TestTaskUpdateReportsDirtyColumns(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects, tasks := NewUsers(d), NewProjects(d), NewTasks(d)

	owner := seedUser(t, users, "owner@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p"})
	require.NoError(t, err)

	task, err := tasks.Create(ctx, model.Task{ProjectID: p.ID, Title: "t", Description: "d"})
	require.NoError(t, err)

	got, dirty, err := tasks.Update(ctx, task.ID, model.TaskPatch{
		UserID: model.Of(&owner.ID),
		Title:  model.Of("t"),
	})
	require.NoError(t, err)
	assert.True(t, dirty.Has("user_id"))
	assert.False(t, dirty.Has("title"))
	require.NotNil(t, got.UserID)
	assert.Equal(t, owner.ID, *got.UserID)

	got, dirty, err = tasks.Update(ctx, task.ID, model.TaskPatch{
		UserID: model.Of[*uint](nil),
	})
	require.NoError(t, err)
	assert.True(t, dirty.Has("user_id"))
	assert.Nil(t, got.UserID)

	_, _, err = tasks.Update(ctx, 404, model.TaskPatch{Title: model.Of("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskListByProjectPreloadsUser(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users, projects, tasks := NewUsers(d), NewProjects(d), NewTasks(d)

	owner := seedUser(t, users, "owner@example.com")
	p, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "p"})
	require.NoError(t, err)
	other, err := projects.Create(ctx, model.Project{UserID: owner.ID, Title: "other"})
	require.NoError(t, err)

	_, err = tasks.Create(ctx, model.Task{ProjectID: p.ID, UserID: &owner.ID, Title: "a", Description: "d", DueDate: ptr(time.Now())})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, model.Task{ProjectID: other.ID, Title: "b", Description: "d"})
	require.NoError(t, err)

	list, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, owner.Email, list[0].User.Email)

	list, err = tasks.ListByProject(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserResetToken(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()
	users := NewUsers(d)

	u := seedUser(t, users, "reset@example.com")

	_, err := users.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := users.FindByEmail(ctx, "reset@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	old := time.Now().Add(-72 * time.Hour)
	got, err := users.SetResetToken(ctx, u.ID, "abcdef0123456789abcd", old)
	require.NoError(t, err)
	require.NotNil(t, got.Token)
	assert.Equal(t, "abcdef0123456789abcd", *got.Token)
	require.NotNil(t, got.TokenCreatedAt)

	n, err := users.ClearExpiredTokens(ctx, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Token)
	assert.Nil(t, got.TokenCreatedAt)

	taken, err := users.EmailTaken(ctx, "reset@example.com")
	require.NoError(t, err)
	assert.True(t, taken)
}
