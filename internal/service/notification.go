package service

import (
	"bitwise74/task-api/internal/mailer"
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/internal/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const newTaskSubject = "Nova tarefa para você"

type UserFinder interface {
	FindByID(ctx context.Context, id uint) (model.User, error)
}

type FileFinder interface {
	FindByID(ctx context.Context, id uint) (model.File, error)
}

type newTaskData struct {
	Username      string
	Title         string
	HasAttachment bool
}

// TaskNotifier emails the assignee of a task that was just created or handed over
type TaskNotifier struct {
	Users   UserFinder
	Files   FileFinder
	Storage storage.Storage
	Mail    mailer.Sender
}

// ShouldNotify reports whether a write with the given dirty set needs a mail.
// Only writes that set or change the assignee to a non-null user do.
func ShouldNotify(t *model.Task, dirty model.DirtySet) bool {
	return t.UserID != nil && dirty.Has("user_id")
}

// SendNewTaskMail sends the "new task" mail for t when ShouldNotify allows it.
// Errors are returned to the caller untouched.
func (n *TaskNotifier) SendNewTaskMail(ctx context.Context, t *model.Task, dirty model.DirtySet) error {
	if !ShouldNotify(t, dirty) {
		return nil
	}

	user, err := n.Users.FindByID(ctx, *t.UserID)
	if err != nil {
		return fmt.Errorf("failed to load task assignee, %w", err)
	}

	var file *model.File
	var content []byte

	if t.FileID != nil {
		f, err := n.Files.FindByID(ctx, *t.FileID)
		if err != nil {
			return fmt.Errorf("failed to load task file, %w", err)
		}

		content, err = storage.ReadAll(ctx, n.Storage, f.Key)
		if err != nil {
			return fmt.Errorf("failed to read task attachment, %w", err)
		}

		file = &f
	}

	zap.L().Debug("Sending new task mail", zap.Uint("task_id", t.ID), zap.Uint("user_id", user.ID))

	return n.Mail.Send(ctx, "new_task", newTaskData{
		Username:      user.Username,
		Title:         t.Title,
		HasAttachment: file != nil,
	}, func(m *mailer.Message) {
		m.To(user.Email).Subject(newTaskSubject)

		if file != nil {
			m.Attach(file.Name, content)
		}
	})
}
