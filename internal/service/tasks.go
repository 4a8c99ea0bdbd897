// Package service holds the use cases that do more than a single query
package service

import (
	"bitwise74/task-api/internal/model"
	"context"
)

type TaskStore interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Update(ctx context.Context, id uint, patch model.TaskPatch) (model.Task, model.DirtySet, error)
}

type Notifier interface {
	SendNewTaskMail(ctx context.Context, t *model.Task, dirty model.DirtySet) error
}

// Tasks runs task writes followed by the assignee notification. The write is
// not rolled back when the notification fails.
type Tasks struct {
	Store    TaskStore
	Notifier Notifier
}

func (s *Tasks) Create(ctx context.Context, t model.Task) (model.Task, error) {
	created, err := s.Store.Create(ctx, t)
	if err != nil {
		return model.Task{}, err
	}

	if err := s.Notifier.SendNewTaskMail(ctx, &created, created.CreatedDirty()); err != nil {
		return created, err
	}

	return created, nil
}

func (s *Tasks) Update(ctx context.Context, id uint, patch model.TaskPatch) (model.Task, error) {
	updated, dirty, err := s.Store.Update(ctx, id, patch)
	if err != nil {
		return model.Task{}, err
	}

	if err := s.Notifier.SendNewTaskMail(ctx, &updated, dirty); err != nil {
		return updated, err
	}

	return updated, nil
}
