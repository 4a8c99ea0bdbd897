// Package repository wraps gorm queries behind small per-table types so
// handlers and services never build queries themselves
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by id or email matches no row
var ErrNotFound = errors.New("record not found")

const DefaultPerPage = 20

// Page is one page of a paginated listing
type Page[T any] struct {
	Total    int64 `json:"total"`
	PerPage  int   `json:"perPage"`
	Page     int   `json:"page"`
	LastPage int   `json:"lastPage"`
	Data     []T   `json:"data"`
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return err
}

func lastPage(total int64, perPage int) int {
	if total == 0 {
		return 1
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}
