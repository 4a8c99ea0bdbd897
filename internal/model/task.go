package model

import (
	"time"
)

type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	UserID      *uint      `gorm:"index" json:"user_id"`
	FileID      *uint      `json:"file_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	DueDate     *time.Time `json:"due_date"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitzero"`
	File *File `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"file,omitzero"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskPatch holds the task columns a client is allowed to change.
type TaskPatch struct {
	UserID      Field[*uint]      `json:"user_id"`
	Title       Field[string]     `json:"title"`
	Description Field[string]     `json:"description"`
	DueDate     Field[*time.Time] `json:"due_date"`
	FileID      Field[*uint]      `json:"file_id"`
}

func (p TaskPatch) Columns() map[string]any {
	cols := map[string]any{}
	p.UserID.apply(cols, "user_id")
	p.Title.apply(cols, "title")
	p.Description.apply(cols, "description")
	p.DueDate.apply(cols, "due_date")
	p.FileID.apply(cols, "file_id")

	return cols
}

// Dirty returns the names of the columns whose patched value differs from t.
func (p TaskPatch) Dirty(t *Task) DirtySet {
	d := DirtySet{}

	if p.UserID.Set && !equalPtr(p.UserID.Value, t.UserID) {
		d.Add("user_id")
	}
	if p.Title.Set && p.Title.Value != t.Title {
		d.Add("title")
	}
	if p.Description.Set && p.Description.Value != t.Description {
		d.Add("description")
	}
	if p.DueDate.Set && !equalTime(p.DueDate.Value, t.DueDate) {
		d.Add("due_date")
	}
	if p.FileID.Set && !equalPtr(p.FileID.Value, t.FileID) {
		d.Add("file_id")
	}

	return d
}

// CreatedDirty returns the dirty set of a freshly inserted task, which is every
// column that was given a value.
func (t *Task) CreatedDirty() DirtySet {
	d := DirtySet{}
	d.Add("project_id")
	d.Add("title")
	d.Add("description")

	if t.UserID != nil {
		d.Add("user_id")
	}
	if t.FileID != nil {
		d.Add("file_id")
	}
	if t.DueDate != nil {
		d.Add("due_date")
	}

	return d
}

func equalPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
