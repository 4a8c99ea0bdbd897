package internal

import (
	"bitwise74/task-api/internal/mailer"
	"bitwise74/task-api/internal/repository"
	"bitwise74/task-api/internal/service"
	"bitwise74/task-api/internal/storage"
	"bitwise74/task-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Users    *repository.Users
	Projects *repository.Projects
	Tasks    *repository.Tasks
	Files    *repository.Files

	TaskService   *service.Tasks
	PasswordReset *service.PasswordReset

	Storage storage.Storage
	Mailer  mailer.Sender
	Argon   *security.ArgonHash

	JWTSecret     string
	MaxUploadSize int64
}

// NewDeps wires repositories and services on top of an open database,
// a file storage and a mail sender
func NewDeps(db *gorm.DB, st storage.Storage, m mailer.Sender) *Deps {
	d := &Deps{
		DB:       db,
		Users:    repository.NewUsers(db),
		Projects: repository.NewProjects(db),
		Tasks:    repository.NewTasks(db),
		Files:    repository.NewFiles(db),
		Storage:  st,
		Mailer:   m,
		Argon:    security.New(),
	}

	d.TaskService = &service.Tasks{
		Store: d.Tasks,
		Notifier: &service.TaskNotifier{
			Users:   d.Users,
			Files:   d.Files,
			Storage: st,
			Mail:    m,
		},
	}

	d.PasswordReset = &service.PasswordReset{
		Users: d.Users,
		Mail:  m,
	}

	return d
}
