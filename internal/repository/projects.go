package repository

import (
	"bitwise74/task-api/internal/model"
	"context"

	"gorm.io/gorm"
)

type Projects struct {
	db *gorm.DB
}

func NewProjects(db *gorm.DB) *Projects {
	return &Projects{db: db}
}

// List returns one page of projects with their owner. Pages start at 1, anything
// lower is treated as the first page.
func (r *Projects) List(ctx context.Context, page, perPage int) (*Page[model.Project], error) {
	if page < 1 {
		page = 1
	}

	if perPage < 1 {
		perPage = DefaultPerPage
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(model.Project{}).Count(&total).Error; err != nil {
		return nil, err
	}

	projects := []model.Project{}

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id asc").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&projects).
		Error
	if err != nil {
		return nil, err
	}

	return &Page[model.Project]{
		Total:    total,
		PerPage:  perPage,
		Page:     page,
		LastPage: lastPage(total, perPage),
		Data:     projects,
	}, nil
}

func (r *Projects) Create(ctx context.Context, p model.Project) (model.Project, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Project{}, err
	}

	return p, nil
}

// FindByID loads a project. The relations named in preload are eager loaded,
// and a preloaded task list is never nil.
func (r *Projects) FindByID(ctx context.Context, id uint, preload ...string) (model.Project, error) {
	var p model.Project

	q := r.db.WithContext(ctx)
	for _, rel := range preload {
		q = q.Preload(rel)
	}

	if err := q.First(&p, id).Error; err != nil {
		return model.Project{}, notFound(err)
	}

	for _, rel := range preload {
		if rel == "Tasks" && p.Tasks == nil {
			p.Tasks = []model.Task{}
		}
	}

	return p, nil
}

// Update applies patch to the project and returns the stored result.
func (r *Projects) Update(ctx context.Context, id uint, patch model.ProjectPatch) (model.Project, error) {
	var p model.Project

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return notFound(err)
		}

		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}

		return tx.Model(&p).Updates(cols).Error
	})
	if err != nil {
		return model.Project{}, err
	}

	return r.FindByID(ctx, id)
}

func (r *Projects) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.Select("id").First(&p, id).Error; err != nil {
			return notFound(err)
		}

		return tx.Delete(&p).Error
	})
}
