package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shettypp/ai-syllabus-planner/internal/adapter/repository"
	domainRepo "github.com/shettypp/ai-syllabus-planner/internal/domain/repository"
)

// Repositories holds all database backed repositories
type Repositories struct {
	Task domainRepo.TaskRepository
	User domainRepo.UserRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Task: repository.NewTaskRepository(db, logger),
		User: repository.NewUserRepository(db),
	}
}
