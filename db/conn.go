// Package db opens the database connection and migrates the schema
package db

import (
	"bitwise74/task-api/internal/model"
	"bitwise74/task-api/pkg/util"
	"errors"
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table, parents before children so foreign keys resolve.
var Models = []any{model.User{}, model.File{}, model.Project{}, model.Task{}}

// New opens the database configured by driver and dsn. Supported drivers are
// sqlite and postgres.
func New(driver, dsn string, migrate bool) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case "sqlite":
		dialector = sqlite.Open(withForeignKeys(dsn))
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s database, %w", driver, err)
	}

	if migrate {
		if err := db.AutoMigrate(Models...); err != nil {
			return nil, fmt.Errorf("failed to automigrate tables, %w", err)
		}
	}

	return db, nil
}

// EnsureMounted refuses to let SQLite create its file inside a docker
// container. The host should instead mount it using volumes.
func EnsureMounted(driver, dsn string) error {
	if driver != "sqlite" {
		return nil
	}

	return checkMounted(dsn, util.IsRunningInDocker())
}

func checkMounted(dsn string, inDocker bool) error {
	if !inDocker || strings.HasPrefix(dsn, "file::memory:") {
		return nil
	}

	path, _, _ := strings.Cut(dsn, "?")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to %s", path)
	}

	return nil
}

// SQLite ignores foreign key actions unless asked for them per connection
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_foreign_keys=on"
}
