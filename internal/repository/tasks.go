package repository

import (
	"bitwise74/task-api/internal/model"
	"context"

	"gorm.io/gorm"
)

type Tasks struct {
	db *gorm.DB
}

func NewTasks(db *gorm.DB) *Tasks {
	return &Tasks{db: db}
}

// ListByProject returns every task of a project with its assignee
func (r *Tasks) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	tasks := []model.Task{}

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("id asc").
		Find(&tasks).
		Error

	return tasks, err
}

func (r *Tasks) Create(ctx context.Context, t model.Task) (model.Task, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Task{}, err
	}

	return t, nil
}

func (r *Tasks) FindByID(ctx context.Context, id uint, preload ...string) (model.Task, error) {
	var t model.Task

	q := r.db.WithContext(ctx)
	for _, rel := range preload {
		q = q.Preload(rel)
	}

	if err := q.First(&t, id).Error; err != nil {
		return model.Task{}, notFound(err)
	}

	return t, nil
}

// Update applies patch to the task and returns the stored result together with
// the set of columns whose value actually changed.
func (r *Tasks) Update(ctx context.Context, id uint, patch model.TaskPatch) (model.Task, model.DirtySet, error) {
	var dirty model.DirtySet

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.Task
		if err := tx.First(&t, id).Error; err != nil {
			return notFound(err)
		}

		dirty = patch.Dirty(&t)

		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}

		return tx.Model(&t).Updates(cols).Error
	})
	if err != nil {
		return model.Task{}, nil, err
	}

	t, err := r.FindByID(ctx, id)
	if err != nil {
		return model.Task{}, nil, err
	}

	return t, dirty, nil
}

func (r *Tasks) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.Task
		if err := tx.Select("id").First(&t, id).Error; err != nil {
			return notFound(err)
		}

		return tx.Delete(&t).Error
	})
}
