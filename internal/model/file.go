// Package model defines database models
package model

import "time"

type File struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	UserID      *uint  `json:"-"`
	Key         string `gorm:"column:file;not null" json:"file"` // Storage key, avoids file name conflicts
	Name        string `gorm:"not null" json:"name"`             // Original file name shown to users
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
