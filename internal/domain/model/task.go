package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Task represents a scheduled plan item
type Task struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:idx_tasks_user_due"`
	Subject    string          `gorm:"size:100;not null"`
	Topic      string          `gorm:"size:200;not null"`
	DueDate    datatypes.Date  `gorm:"type:date;not null;index:idx_tasks_user_due"`
	StartTime  *datatypes.Time `gorm:"type:time"`
	EndTime    *datatypes.Time `gorm:"type:time"`
	IsComplete bool            `gorm:"not null;default:false"`
	Notes      string          `gorm:"type:text"`
	TaskType   string          `gorm:"size:20;not null;default:study"`
	CreatedAt  time.Time       `gorm:"default:now()"`
	UpdatedAt  time.Time       `gorm:"default:now()"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}
