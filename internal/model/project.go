package model

import "time"

type Project struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	User  *User  `json:"user,omitzero"`
	Tasks []Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"tasks,omitzero"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectPatch holds the project columns a client is allowed to change.
// Keys missing from the request body are left untouched.
type ProjectPatch struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
}

func (p ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	p.Title.apply(cols, "title")
	p.Description.apply(cols, "description")

	return cols
}
