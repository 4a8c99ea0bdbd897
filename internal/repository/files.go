package repository

import (
	"bitwise74/task-api/internal/model"
	"context"

	"gorm.io/gorm"
)

type Files struct {
	db *gorm.DB
}

func NewFiles(db *gorm.DB) *Files {
	return &Files{db: db}
}

func (r *Files) Create(ctx context.Context, f model.File) (model.File, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return model.File{}, err
	}

	return f, nil
}

func (r *Files) FindByID(ctx context.Context, id uint) (model.File, error) {
	var f model.File

	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return model.File{}, notFound(err)
	}

	return f, nil
}
